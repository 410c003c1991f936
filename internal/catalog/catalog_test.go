package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comfort-hq/digital-catalogue/internal/gateway/gatewaytest"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "widget stand", Description: "Holds widgets", Price: 10, Category: model.CategoryLobby},
		{ID: "2", Name: "Bath Towel", Description: "Soft cotton", Price: 12, Category: model.CategoryTowels},
		{ID: "3", Name: "", Description: "Mystery item with WIDGET inside", Category: model.CategoryTowels},
		{ID: "4", Name: "Hand towel", Description: "", Category: "towels"},
		{ID: "5", Name: "", Description: "", Category: model.CategoryBedding},
		{ID: "6", Name: "Çamaşır Torbası", Description: "Laundry bag", Category: model.CategoryHousekeeping},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestByCategory_ExactMatchOnly(t *testing.T) {
	got := ByCategory(sampleProducts(), model.CategoryTowels)
	assert.Equal(t, []string{"2", "3"}, ids(got))

	assert.Empty(t, ByCategory(sampleProducts(), "Towel"))
	assert.Empty(t, ByCategory(nil, model.CategoryTowels))
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{"upper case term matches lower case name", "WIDGET", []string{"1", "3"}},
		{"matches description", "cotton", []string{"2"}},
		{"empty term matches products with any text", "", []string{"1", "2", "3", "4", "6"}},
		{"no match", "chair", []string{}},
		{"unicode folding", "ÇAMAŞIR", []string{"6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(sampleProducts(), tt.term)
			if diff := cmp.Diff(tt.expected, ids(got)); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.term, diff)
			}
		})
	}
}

func TestFilterByName(t *testing.T) {
	got := FilterByName(sampleProducts(), "towel")
	assert.Equal(t, []string{"2", "4"}, ids(got))

	// Unnamed products never show up, even for an empty filter
	assert.Equal(t, []string{"1", "2", "4", "6"}, ids(FilterByName(sampleProducts(), "")))
}

func TestService_ListCategoryAndSearch(t *testing.T) {
	fake := gatewaytest.New()
	fake.SetProducts(sampleProducts())
	svc := NewService(fake, nil)

	assert.Equal(t, []string{"2", "3"}, ids(svc.ListCategory(context.Background(), model.CategoryTowels)))
	assert.Equal(t, []string{"1", "3"}, ids(svc.Search(context.Background(), "widget")))
	assert.Equal(t, 2, fake.Fetches())
	assert.Empty(t, fake.Calls())
}

func TestService_FetchAllEmptyOnFailure(t *testing.T) {
	svc := NewService(gatewaytest.New(), nil)

	products := svc.FetchAll(context.Background())
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestService_FetchAllSharesInFlightRequest(t *testing.T) {
	fake := gatewaytest.New()
	fake.SetProducts(sampleProducts())
	fake.Block = make(chan struct{})
	svc := NewService(fake, nil)

	var wg sync.WaitGroup
	results := make([][]model.Product, 3)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.FetchAll(context.Background())
		}(i)
	}

	// Give the goroutines time to join the same flight before releasing it
	time.Sleep(50 * time.Millisecond)
	close(fake.Block)
	wg.Wait()

	for _, r := range results {
		assert.Len(t, r, len(sampleProducts()))
	}
	assert.LessOrEqual(t, fake.Fetches(), 3)
	assert.GreaterOrEqual(t, fake.Fetches(), 1)
}

// contextReader blocks until released and returns nothing once its context ends
type contextReader struct {
	products []model.Product
	started  chan struct{}
	release  chan struct{}
	once     sync.Once

	mu      sync.Mutex
	lastErr error
}

func newContextReader(products []model.Product) *contextReader {
	return &contextReader{
		products: products,
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (r *contextReader) FetchAll(ctx context.Context) []model.Product {
	r.once.Do(func() { close(r.started) })
	select {
	case <-r.release:
		return append([]model.Product(nil), r.products...)
	case <-ctx.Done():
		r.mu.Lock()
		r.lastErr = ctx.Err()
		r.mu.Unlock()
		return []model.Product{}
	}
}

func (r *contextReader) err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func waiting(s *Service) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return 0
	}
	return s.current.waiters
}

func TestService_FetchAllOutlivesCancelledFirstCaller(t *testing.T) {
	reader := newContextReader(sampleProducts())
	svc := NewService(reader, nil)

	first, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan []model.Product, 1)
	go func() { firstDone <- svc.FetchAll(first) }()
	<-reader.started

	secondDone := make(chan []model.Product, 1)
	go func() { secondDone <- svc.FetchAll(context.Background()) }()
	require.Eventually(t, func() bool { return waiting(svc) == 2 }, time.Second, 5*time.Millisecond)

	// The screen that started the fetch goes away
	cancelFirst()
	assert.Empty(t, <-firstDone)

	close(reader.release)
	assert.Len(t, <-secondDone, len(sampleProducts()))
	assert.NoError(t, reader.err())
}

func TestService_FetchAllCancelsWhenEveryCallerLeaves(t *testing.T) {
	reader := newContextReader(sampleProducts())
	svc := NewService(reader, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan []model.Product, 1)
	go func() { done <- svc.FetchAll(ctx) }()
	<-reader.started

	cancel()
	assert.Empty(t, <-done)
	require.Eventually(t, func() bool { return reader.err() != nil }, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, reader.err(), context.Canceled)
	assert.Zero(t, waiting(svc))

	// A later caller starts a fresh request
	close(reader.release)
	assert.Len(t, svc.FetchAll(context.Background()), len(sampleProducts()))
}
