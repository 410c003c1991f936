package nav

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/comfort-hq/digital-catalogue/internal/auth"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

// LoginErrorMessage is shown after a rejected login
const LoginErrorMessage = "Invalid username or password"

// Dispatcher runs fn on the UI goroutine. fyne.Do satisfies it.
type Dispatcher func(fn func())

// Listener is called after every navigation and after login
type Listener func(State)

// State is the navigation context. It only changes through Navigate.
type State struct {
	Screen          Screen
	SelectedProduct *model.Product
	InitialCategory model.Category
	SearchTerm      string
	Authenticated   bool
}

// Controller owns the navigation state
type Controller struct {
	dispatch Dispatcher
	logger   *zap.Logger

	mu            sync.Mutex
	screen        Screen
	searchTerm    string
	authenticated bool
	loginError    string
	generation    uint64
	ctx           context.Context
	cancel        context.CancelFunc
	listeners     []Listener

	tasks sync.WaitGroup
}

// NewController starts on Dashboard, unauthenticated. A nil dispatch runs
// results on the worker goroutine itself.
func NewController(dispatch Dispatcher, logger *zap.Logger) *Controller {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		dispatch: dispatch,
		logger:   logger.Named("nav"),
		screen:   Dashboard{},
		ctx:      ctx,
		cancel:   cancel,
	}
}

// OnChange registers a listener
func (c *Controller) OnChange(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Current returns the current screen
func (c *Controller) Current() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// State returns a snapshot of the navigation context
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	st := State{
		Screen:        c.screen,
		SearchTerm:    c.searchTerm,
		Authenticated: c.authenticated,
	}
	switch s := c.screen.(type) {
	case ProductDetail:
		p := s.Product
		st.SelectedProduct = &p
	case EditProduct:
		p := s.Product
		st.SelectedProduct = &p
	case AddProduct:
		st.InitialCategory = s.Category
	case ProductList:
		st.InitialCategory = s.Category
	}
	return st
}

// Context is cancelled as soon as the current screen is left
func (c *Controller) Context() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctx
}

// Navigate replaces the current screen and its context in one step. Tasks
// started on the previous screen are cancelled.
func (c *Controller) Navigate(screen Screen) {
	if screen == nil {
		screen = Dashboard{}
	}

	c.mu.Lock()
	c.cancel()
	c.ctx, c.cancel = context.WithCancel(context.Background())
	c.generation++
	c.screen = screen
	if s, ok := screen.(Search); ok {
		c.searchTerm = s.Term
	}
	st := c.stateLocked()
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	c.logger.Debug("Navigate", zap.String("screen", screen.ID()))
	for _, fn := range listeners {
		fn(st)
	}
}

// NavigateID navigates by string id. category feeds AddProduct and
// ProductList; product feeds ProductDetail and EditProduct. A Search id reuses
// the last search term.
func (c *Controller) NavigateID(id string, category model.Category, product *model.Product) {
	c.mu.Lock()
	term := c.searchTerm
	c.mu.Unlock()
	c.Navigate(resolve(id, category, product, term))
}

// Back navigates to the back target of the current screen
func (c *Controller) Back() {
	c.Navigate(BackTarget(c.Current()))
}

// Authenticated reports whether Login has succeeded
func (c *Controller) Authenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

// LoginError returns the message of the last rejected login, empty otherwise
func (c *Controller) LoginError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginError
}

// Login checks the credentials. Success is a one-way transition; failure only
// records the error message.
func (c *Controller) Login(user, pass string) error {
	if c.Authenticated() {
		return nil
	}

	if err := auth.Check(user, pass); err != nil {
		c.mu.Lock()
		c.loginError = LoginErrorMessage
		c.mu.Unlock()
		c.logger.Info("Login rejected")
		return err
	}

	c.mu.Lock()
	c.authenticated = true
	c.loginError = ""
	st := c.stateLocked()
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	c.logger.Info("Login accepted")
	for _, fn := range listeners {
		fn(st)
	}
	return nil
}

// Run executes work on a new goroutine with the current screen's context. The
// closure work returns is dispatched only if that screen is still current;
// otherwise it is dropped.
func (c *Controller) Run(work func(ctx context.Context) func()) {
	taskID := uuid.NewString()
	ctx, apply := c.scope(taskID)

	c.tasks.Add(1)
	go func() {
		defer c.tasks.Done()

		fn := work(ctx)
		if fn == nil {
			c.logger.Debug("Task finished without a result", zap.String("task", taskID))
			return
		}
		apply(fn)
	}()
}

// Go runs fn on a new goroutine that Wait and Close account for. Unlike Run
// it has no result to apply and is not tied to the current screen.
func (c *Controller) Go(fn func()) {
	c.tasks.Add(1)
	go func() {
		defer c.tasks.Done()
		fn()
	}()
}

// Scoped returns a dispatcher bound to the current screen. Functions passed
// to it run through the controller's dispatcher while that screen is still
// shown and are dropped after it has been left. It is safe to call from any
// goroutine.
func (c *Controller) Scoped() func(fn func()) {
	_, apply := c.scope(uuid.NewString())
	return apply
}

// scope binds taskID to the current screen. Every log line about the task
// carries the id.
func (c *Controller) scope(taskID string) (context.Context, func(fn func())) {
	c.mu.Lock()
	ctx := c.ctx
	gen := c.generation
	screenID := c.screen.ID()
	c.mu.Unlock()

	c.logger.Debug("Task started", zap.String("task", taskID), zap.String("screen", screenID))

	return ctx, func(fn func()) {
		if err := ctx.Err(); err != nil {
			c.logStale(taskID, screenID, err)
			return
		}
		c.dispatch(func() {
			if !c.isCurrent(gen) {
				c.logStale(taskID, screenID, context.Canceled)
				return
			}
			fn()
		})
	}
}

// Wait blocks until every task started by Run or Go has returned
func (c *Controller) Wait() {
	c.tasks.Wait()
}

// Close cancels the current screen's tasks and waits for them
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancel()
	c.generation++
	c.mu.Unlock()
	c.Wait()
}

func (c *Controller) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == gen
}

func (c *Controller) logStale(taskID, screenID string, err error) {
	if errors.Is(err, context.Canceled) {
		c.logger.Debug("Dropped result of task for a screen that is no longer shown",
			zap.String("task", taskID), zap.String("screen", screenID))
		return
	}
	c.logger.Warn("Task ended with an expired context",
		zap.String("task", taskID), zap.String("screen", screenID), zap.Error(err))
}
