// Package gatewaytest provides an in-memory gateway for tests.
package gatewaytest

import (
	"context"
	"sync"

	"github.com/comfort-hq/digital-catalogue/internal/gateway"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// Call records one Call invocation
type Call struct {
	Action  string
	Payload map[string]any
}

// Fake implements gateway.Gateway. Responses are looked up by action; an
// action without a configured response succeeds with {"success": true}.
type Fake struct {
	mu        sync.Mutex
	calls     []Call
	fetches   int
	responses map[string]gateway.Envelope
	errs      map[string]error
	products  []model.Product

	// Block, when set, is waited on by every Call and FetchAll
	Block chan struct{}
}

// New creates an empty fake
func New() *Fake {
	return &Fake{
		responses: make(map[string]gateway.Envelope),
		errs:      make(map[string]error),
	}
}

// Respond configures the envelope returned for action
func (f *Fake) Respond(action string, env gateway.Envelope) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[action] = env
}

// Fail configures action to fail with a RemoteCallError carrying message
func (f *Fake) Fail(action, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[action] = &gateway.RemoteCallError{Action: action, Message: message}
}

// SetProducts configures the list returned by FetchAll
func (f *Fake) SetProducts(products []model.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = append([]model.Product(nil), products...)
}

// Call implements gateway.Caller
func (f *Fake) Call(ctx context.Context, action string, payload map[string]any) (gateway.Envelope, error) {
	f.wait(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Action: action, Payload: payload})
	if err := ctx.Err(); err != nil {
		return nil, &gateway.RemoteCallError{Action: action, Message: err.Error(), Err: err}
	}
	if err, ok := f.errs[action]; ok {
		return nil, err
	}
	if env, ok := f.responses[action]; ok {
		return env, nil
	}
	return gateway.Envelope{gateway.FieldSuccess: true}, nil
}

// FetchAll implements gateway.Reader
func (f *Fake) FetchAll(ctx context.Context) []model.Product {
	f.wait(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.products == nil {
		return []model.Product{}
	}
	return append([]model.Product(nil), f.products...)
}

// Calls returns the recorded Call invocations
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Fetches returns how many times FetchAll ran
func (f *Fake) Fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *Fake) wait(ctx context.Context) {
	if f.Block == nil {
		return
	}
	select {
	case <-f.Block:
	case <-ctx.Done():
	}
}

var _ gateway.Gateway = (*Fake)(nil)
