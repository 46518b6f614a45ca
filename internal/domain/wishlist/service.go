// internal/domain/wishlist/service.go
package wishlist

import (
	"time"

	"github.com/your-org/shopmart/internal/domain/catalog"
)

// Wishlist is a set of products keyed by id, kept in the order they were added.
// It is not safe for concurrent use.
type Wishlist struct {
	entries []Entry
	index   map[int]struct{}
	now     func() time.Time
}

// New creates an empty wishlist
func New() *Wishlist {
	return &Wishlist{
		index: make(map[int]struct{}),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Toggle removes the product when present and adds a snapshot of it otherwise.
// It reports whether the product is in the wishlist afterwards.
func (w *Wishlist) Toggle(product catalog.Product) bool {
	if _, ok := w.index[product.ID]; ok {
		delete(w.index, product.ID)
		for i, e := range w.entries {
			if e.ProductID == product.ID {
				w.entries = append(w.entries[:i], w.entries[i+1:]...)
				break
			}
		}
		return false
	}

	w.index[product.ID] = struct{}{}
	w.entries = append(w.entries, Entry{
		ProductID: product.ID,
		Product:   product.Clone(),
		AddedAt:   w.now(),
	})
	return true
}

// Contains reports wishlist membership
func (w *Wishlist) Contains(productID int) bool {
	_, ok := w.index[productID]
	return ok
}

// Entries returns a snapshot of the wishlist
func (w *Wishlist) Entries() []Entry {
	out := make([]Entry, len(w.entries))
	for i, e := range w.entries {
		e.Product = e.Product.Clone()
		out[i] = e
	}
	return out
}

// IDs returns the wishlisted product ids
func (w *Wishlist) IDs() []int {
	ids := make([]int, len(w.entries))
	for i, e := range w.entries {
		ids[i] = e.ProductID
	}
	return ids
}

// Len returns the number of entries
func (w *Wishlist) Len() int {
	return len(w.entries)
}
