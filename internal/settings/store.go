// Package settings holds the process-wide display settings. The store is
// created once, injected into every screen, and synchronised with the remote
// endpoint through the gateway.
package settings

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/comfort-hq/digital-catalogue/internal/gateway"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// DefaultSavedMessage is reported when the server confirms a save without a message
const DefaultSavedMessage = "Settings saved successfully!"

// Result is the outcome of Save
type Result struct {
	OK      bool
	Message string
}

// Store caches the display settings in memory and notifies subscribers on change
type Store struct {
	caller gateway.Caller
	logger *zap.Logger

	mu      sync.RWMutex
	current model.DisplaySettings
	loaded  bool
	subs    map[int]func(model.DisplaySettings)
	nextSub int
}

// NewStore creates a store initialised to the defaults
func NewStore(caller gateway.Caller, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		caller:  caller,
		logger:  logger.Named("settings"),
		current: model.DefaultDisplaySettings(),
		subs:    make(map[int]func(model.DisplaySettings)),
	}
}

// Current returns a copy of the current settings
func (s *Store) Current() model.DisplaySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Loaded reports whether the initial Load has completed, successfully or not
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Subscribe registers fn to receive the settings after every change. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(model.DisplaySettings)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Load fetches the remote settings and merges them over the current value.
// On failure the last known value is kept; the store is marked loaded either
// way so nothing waits on it forever. The error is returned for reporting only.
func (s *Store) Load(ctx context.Context) error {
	env, err := s.caller.Call(ctx, gateway.ActionGetSettings, nil)
	if err != nil {
		s.logger.Warn("Loading settings failed, keeping last known values", zap.Error(err))
		s.mu.Lock()
		s.loaded = true
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.current = Merge(s.current, env.Settings())
	s.loaded = true
	snapshot := s.current
	s.mu.Unlock()

	s.logger.Info("Settings loaded",
		zap.String("font_family", snapshot.FontFamily),
		zap.Int("grid_columns", snapshot.CategoryGridColumns))
	s.notify(snapshot)
	return nil
}

// Save pushes next to the remote side. On success the saved fields (and any
// settings echoed by the server) are merged into the store; on failure the
// store is left untouched.
func (s *Store) Save(ctx context.Context, next model.DisplaySettings) Result {
	fields := next.Fields()
	env, err := s.caller.Call(ctx, gateway.ActionUpdateSettings, map[string]any{
		gateway.FieldSettings: fields,
	})
	if err != nil {
		s.logger.Warn("Saving settings failed", zap.Error(err))
		return Result{OK: false, Message: err.Error()}
	}
	if !env.Success() {
		message := env.Message()
		if message == "" {
			message = gateway.FallbackMessage
		}
		return Result{OK: false, Message: message}
	}

	s.mu.Lock()
	merged := Merge(s.current, fields)
	if echoed := env.Settings(); echoed != nil {
		merged = Merge(merged, echoed)
	}
	s.current = merged
	s.mu.Unlock()

	s.notify(merged)

	message := env.Message()
	if message == "" {
		message = DefaultSavedMessage
	}
	return Result{OK: true, Message: message}
}

// notify calls subscribers in registration order, outside the lock
func (s *Store) notify(snapshot model.DisplaySettings) {
	s.mu.RLock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(model.DisplaySettings), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
