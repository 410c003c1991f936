// Package catalog reads the product list and derives category listings and
// search results from it. All derivation happens client side after a full
// fetch; nothing here mutates remote state.
package catalog

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/comfort-hq/digital-catalogue/internal/gateway"
	"github.com/comfort-hq/digital-catalogue/internal/model"
)

const fetchAllKey = "products"

// Service fetches products through the gateway's read entry point
type Service struct {
	reader gateway.Reader
	logger *zap.Logger
	group  singleflight.Group

	mu      sync.Mutex
	current *flight
}

// flight is the shared product fetch. Its context is detached from every
// caller and cancelled once the last waiter has gone.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// NewService creates a catalog service
func NewService(reader gateway.Reader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		reader: reader,
		logger: logger.Named("catalog"),
	}
}

// FetchAll returns every product. Concurrent callers share one request; a
// failed read, or ctx ending first, yields an empty list.
func (s *Service) FetchAll(ctx context.Context) []model.Product {
	f, ch := s.join(ctx)
	defer s.leave(f)

	select {
	case res := <-ch:
		products, _ := res.Val.([]model.Product)
		if products == nil {
			return []model.Product{}
		}
		if res.Shared {
			s.logger.Debug("Shared in-flight product fetch", zap.Int("count", len(products)))
			// Callers own their slice
			products = append([]model.Product(nil), products...)
		}
		return products
	case <-ctx.Done():
		s.logger.Debug("Caller left product fetch", zap.Error(ctx.Err()))
		return []model.Product{}
	}
}

func (s *Service) join(ctx context.Context) (*flight, <-chan singleflight.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		s.current = &flight{ctx: fctx, cancel: cancel}
	}
	f := s.current
	f.waiters++
	ch := s.group.DoChan(fetchAllKey, func() (any, error) {
		return s.reader.FetchAll(f.ctx), nil
	})
	return f, ch
}

func (s *Service) leave(f *flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if s.current == f {
		s.current = nil
		s.group.Forget(fetchAllKey)
	}
}

// ListCategory fetches and filters by exact category
func (s *Service) ListCategory(ctx context.Context, category model.Category) []model.Product {
	return ByCategory(s.FetchAll(ctx), category)
}

// Search fetches and filters by term
func (s *Service) Search(ctx context.Context, term string) []model.Product {
	return Search(s.FetchAll(ctx), term)
}

// ByCategory keeps products whose category equals category exactly
func ByCategory(products []model.Product, category model.Category) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search keeps products whose name or description contains term,
// case-insensitively. Empty text fields never match.
func Search(products []model.Product, term string) []model.Product {
	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if containsFolded(lower, p.Name, needle) || containsFolded(lower, p.Description, needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByName keeps named products whose name contains filter, case-insensitively
func FilterByName(products []model.Product, filter string) []model.Product {
	lower := cases.Lower(language.Und)
	needle := lower.String(filter)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if containsFolded(lower, p.Name, needle) {
			out = append(out, p)
		}
	}
	return out
}

func containsFolded(lower cases.Caser, text, needle string) bool {
	if text == "" {
		return false
	}
	return strings.Contains(lower.String(text), needle)
}
