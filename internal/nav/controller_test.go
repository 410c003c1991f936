package nav

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/comfort-hq/digital-catalogue/internal/auth"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseScreen(t *testing.T) {
	tests := []struct {
		id       string
		expected Screen
	}{
		{"Dashboard", Dashboard{}},
		{"AddProduct", AddProduct{}},
		{"AppSettings", AppSettings{}},
		{"SettingsProducts", SettingsProducts{}},
		{"Settings", SettingsProducts{}},
		{"Search", Search{}},
		{"ProductList-Towels", ProductList{Category: model.CategoryTowels}},
		{"ProductList-Eco-Friendly", ProductList{Category: model.CategoryEcoFriendly}},
		{"ProductList-S-Collection", ProductList{Category: model.CategorySCollection}},
		{"ProductList-Nope", Dashboard{}},
		{"ProductList", Dashboard{}},
		{"ProductDetail", Dashboard{}},
		{"EditProduct", Dashboard{}},
		{"Bogus", Dashboard{}},
		{"", Dashboard{}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseScreen(tt.id))
		})
	}
}

func TestScreenIDRoundTrip(t *testing.T) {
	screens := []Screen{
		Dashboard{}, AppSettings{}, SettingsProducts{},
		ProductList{Category: model.CategoryBathroomAmenities},
	}
	for _, s := range screens {
		assert.Equal(t, s, ParseScreen(s.ID()), s.ID())
	}
}

func TestBackTarget(t *testing.T) {
	towel := model.Product{ID: "7", Name: "Towel", Category: model.CategoryTowels}

	assert.Equal(t, ProductList{Category: model.CategoryTowels}, BackTarget(ProductDetail{Product: towel}))
	assert.Equal(t, ProductDetail{Product: towel}, BackTarget(EditProduct{Product: towel}))
	assert.Equal(t, Dashboard{}, BackTarget(ProductList{Category: model.CategoryTowels}))
	assert.Equal(t, Dashboard{}, BackTarget(Search{Term: "x"}))
}

func TestController_Login(t *testing.T) {
	c := NewController(nil, nil)
	require.False(t, c.Authenticated())
	assert.Equal(t, Dashboard{}, c.Current())

	err := c.Login("admin", "nope")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.False(t, c.Authenticated())
	assert.Equal(t, LoginErrorMessage, c.LoginError())

	var seen []State
	c.OnChange(func(s State) { seen = append(seen, s) })

	require.NoError(t, c.Login("Admin", "MarketingComfort25"))
	assert.True(t, c.Authenticated())
	assert.Empty(t, c.LoginError())
	require.Len(t, seen, 1)
	assert.True(t, seen[0].Authenticated)

	// Once in, further attempts do not log out
	require.NoError(t, c.Login("x", "y"))
	assert.True(t, c.Authenticated())
}

func TestController_NavigateSetsContext(t *testing.T) {
	c := NewController(nil, nil)
	towel := model.Product{ID: "7", Name: "Towel", Category: model.CategoryTowels}

	c.Navigate(ProductDetail{Product: towel})
	st := c.State()
	require.NotNil(t, st.SelectedProduct)
	assert.Equal(t, towel, *st.SelectedProduct)

	c.Navigate(ProductList{Category: model.CategoryTowels})
	st = c.State()
	assert.Nil(t, st.SelectedProduct)
	assert.Equal(t, model.CategoryTowels, st.InitialCategory)

	c.Navigate(nil)
	assert.Equal(t, Dashboard{}, c.Current())
}

func TestController_NavigateID(t *testing.T) {
	c := NewController(nil, nil)
	towel := model.Product{ID: "7", Category: model.CategoryTowels}

	c.NavigateID(IDAddProduct, model.CategoryLobby, nil)
	assert.Equal(t, AddProduct{Category: model.CategoryLobby}, c.Current())

	c.NavigateID(IDEditProduct, "", &towel)
	assert.Equal(t, EditProduct{Product: towel}, c.Current())

	c.NavigateID(IDProductDetail, "", nil)
	assert.Equal(t, Dashboard{}, c.Current())

	c.Navigate(Search{Term: "pillow"})
	c.NavigateID(IDDashboard, "", nil)
	c.NavigateID(IDSearch, "", nil)
	assert.Equal(t, Search{Term: "pillow"}, c.Current())
	assert.Equal(t, "pillow", c.State().SearchTerm)
}

func TestController_Back(t *testing.T) {
	c := NewController(nil, nil)
	towel := model.Product{ID: "7", Category: model.CategoryTowels}

	c.Navigate(EditProduct{Product: towel})
	c.Back()
	assert.Equal(t, ProductDetail{Product: towel}, c.Current())
	c.Back()
	assert.Equal(t, ProductList{Category: model.CategoryTowels}, c.Current())
	c.Back()
	assert.Equal(t, Dashboard{}, c.Current())
}

func TestController_RunAppliesOnCurrentScreen(t *testing.T) {
	c := NewController(nil, nil)
	c.Navigate(ProductList{Category: model.CategoryTowels})

	applied := make(chan struct{}, 1)
	c.Run(func(ctx context.Context) func() {
		return func() { applied <- struct{}{} }
	})
	c.Wait()

	select {
	case <-applied:
	default:
		t.Fatal("result for the current screen was not applied")
	}
}

func TestController_RunDropsStaleResult(t *testing.T) {
	c := NewController(nil, nil)
	c.Navigate(ProductList{Category: model.CategoryTowels})

	started := make(chan struct{})
	release := make(chan struct{})
	applied := false
	var taskErr error

	c.Run(func(ctx context.Context) func() {
		close(started)
		<-release
		taskErr = ctx.Err()
		return func() { applied = true }
	})

	<-started
	c.Navigate(Dashboard{})
	close(release)
	c.Wait()

	assert.False(t, applied)
	assert.ErrorIs(t, taskErr, context.Canceled)
}

func TestController_DispatchChecksScreenAgain(t *testing.T) {
	var queued []func()
	c := NewController(func(fn func()) { queued = append(queued, fn) }, nil)

	applied := false
	c.Run(func(ctx context.Context) func() {
		return func() { applied = true }
	})
	c.Wait()
	require.Len(t, queued, 1)

	// The screen changes between dispatch and execution on the UI goroutine
	c.Navigate(AppSettings{})
	queued[0]()

	assert.False(t, applied)
}

func TestController_CloseCancelsTasks(t *testing.T) {
	c := NewController(nil, nil)

	started := make(chan struct{})
	c.Run(func(ctx context.Context) func() {
		close(started)
		<-ctx.Done()
		return nil
	})

	<-started
	c.Close()
	assert.Error(t, c.Context().Err())
}

func TestController_Scoped(t *testing.T) {
	c := NewController(nil, nil)
	c.Navigate(SettingsProducts{})

	apply := c.Scoped()
	ran := 0
	apply(func() { ran++ })
	assert.Equal(t, 1, ran)

	c.Navigate(Dashboard{})
	apply(func() { ran++ })
	assert.Equal(t, 1, ran)
}

func TestController_CloseWaitsForGo(t *testing.T) {
	c := NewController(nil, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	c.Go(func() {
		close(started)
		<-release
	})
	<-started

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while a task was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-closed
}

func TestController_TaskIDTagsLogLines(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := NewController(nil, zap.New(core))
	c.Navigate(ProductList{Category: model.CategoryTowels})

	release := make(chan struct{})
	c.Run(func(ctx context.Context) func() {
		<-release
		return func() {}
	})
	c.Navigate(Dashboard{})
	close(release)
	c.Wait()

	started := logs.FilterMessage("Task started").All()
	require.Len(t, started, 1)
	taskID := started[0].ContextMap()["task"]
	require.NotEmpty(t, taskID)
	assert.Equal(t, "ProductList-Towels", started[0].ContextMap()["screen"])

	dropped := logs.FilterMessage("Dropped result of task for a screen that is no longer shown").All()
	require.Len(t, dropped, 1)
	assert.Equal(t, taskID, dropped[0].ContextMap()["task"])
}
