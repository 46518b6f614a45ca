// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrProductNotFound is returned when a product id is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// Store holds the fetched product list and its derived category set. It is
// written once by Load and read-only afterwards.
type Store struct {
	mu         sync.RWMutex
	products   []Product
	byID       map[int]int
	categories []string
	loading    bool
	loadErr    error
	logger     *logrus.Logger
}

// NewStore creates an empty store in the loading state
func NewStore(logger *logrus.Logger) *Store {
	return &Store{
		byID:    make(map[int]int),
		loading: true,
		logger:  logger,
	}
}

// Load fetches the catalog once. A failure is logged and leaves the store
// empty with the loading flag cleared; it is returned only for callers that
// want to inspect it.
func (s *Store) Load(ctx context.Context, fetcher Fetcher) error {
	products, err := fetcher.FetchProducts(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch catalog")
		s.mu.Lock()
		s.loading = false
		s.loadErr = err
		s.mu.Unlock()
		return err
	}

	s.Replace(products)
	s.logger.WithFields(logrus.Fields{
		"products":   len(products),
		"categories": len(s.Categories()),
	}).Info("Catalog loaded")
	return nil
}

// Replace installs a product list and clears the loading flag
func (s *Store) Replace(products []Product) {
	byID := make(map[int]int, len(products))
	seen := make(map[string]bool)
	categories := []string{}
	copied := make([]Product, 0, len(products))

	for _, p := range products {
		if _, dup := byID[p.ID]; dup {
			continue
		}
		byID[p.ID] = len(copied)
		copied = append(copied, p.Clone())
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = copied
	s.byID = byID
	s.categories = categories
	s.loading = false
	s.loadErr = nil
}

// Products returns a copy of the product list in source order
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Categories returns the unique categories in first-seen order
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.categories...)
}

// Get returns a snapshot of one product
func (s *Store) Get(id int) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return s.products[idx].Clone(), nil
}

// Loading reports whether the initial load is still in flight
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LoadError returns the failure of the initial load, if any
func (s *Store) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Len returns the number of products
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
