// internal/domain/view/service.go
package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/your-org/shopmart/internal/domain/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// State is the visitor's navigational state
type State struct {
	Screen            Screen  `json:"screen"`
	Search            string  `json:"search"`
	Category          string  `json:"category"`
	Sort              SortKey `json:"sort"`
	Mode              Mode    `json:"mode"`
	VisibleCount      int     `json:"visible_count"`
	PageSize          int     `json:"page_size"`
	SelectedProductID *int    `json:"selected_product_id,omitempty"`
	SelectedOrderID   string  `json:"selected_order_id,omitempty"`
}

// Filters is a partial update of the list controls; nil fields are left as is
type Filters struct {
	Search   *string
	Category *string
	Sort     *SortKey
	Mode     *Mode
}

// NewState returns the initial view: product grid, no filters, first page
func NewState(pageSize int) *State {
	return &State{
		Screen:       ScreenProducts,
		Category:     AllCategories,
		Sort:         SortDefault,
		Mode:         ModeGrid,
		VisibleCount: pageSize,
		PageSize:     pageSize,
	}
}

// Apply updates the list controls. Any change to search, category or sort
// resets the reveal window to one page.
func (s *State) Apply(f Filters) {
	changed := false
	if f.Search != nil && *f.Search != s.Search {
		s.Search = *f.Search
		changed = true
	}
	if f.Category != nil {
		category := *f.Category
		if category == "" {
			category = AllCategories
		}
		if category != s.Category {
			s.Category = category
			changed = true
		}
	}
	if f.Sort != nil && *f.Sort != s.Sort {
		s.Sort = *f.Sort
		changed = true
	}
	if f.Mode != nil {
		s.Mode = *f.Mode
	}
	if changed {
		s.VisibleCount = s.PageSize
	}
}

// LoadMore reveals one more page
func (s *State) LoadMore() {
	s.VisibleCount += s.PageSize
}

// Navigate switches screen
func (s *State) Navigate(screen Screen) {
	s.Screen = screen
}

// SelectProduct opens the detail view for a product
func (s *State) SelectProduct(id int) {
	s.SelectedProductID = &id
}

// ClearSelectedProduct closes the detail view
func (s *State) ClearSelectedProduct() {
	s.SelectedProductID = nil
}

// SelectOrder shows an order on the tracking screen
func (s *State) SelectOrder(id string) {
	s.SelectedOrderID = id
	s.Screen = ScreenTracking
}

// Clone returns a copy safe to hand out
func (s *State) Clone() State {
	c := *s
	if s.SelectedProductID != nil {
		id := *s.SelectedProductID
		c.SelectedProductID = &id
	}
	return c
}

// Page is the visible slice of the derived product list
type Page struct {
	Items   []catalog.Product `json:"items"`
	Total   int               `json:"total"`
	Visible int               `json:"visible"`
	HasMore bool              `json:"has_more"`
}

// Filter keeps products whose title contains search (case-insensitive) and
// whose category matches, unless category is AllCategories or empty.
func Filter(products []catalog.Product, search, category string) []catalog.Product {
	needle := strings.ToLower(search)
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Title), needle) {
			continue
		}
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a stably sorted copy of products
func Sort(products []catalog.Product, key SortKey) []catalog.Product {
	out := slices.Clone(products)

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b catalog.Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b catalog.Product) int { return b.Price.Cmp(a.Price) })
	case SortRatingDesc:
		slices.SortStableFunc(out, func(a, b catalog.Product) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortNameAsc:
		// Collators keep internal buffers, so each sort gets its own.
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b catalog.Product) int { return col.CompareString(a.Title, b.Title) })
	}
	return out
}

// Derive runs the filter, sort and pagination pipeline for a view state
func Derive(products []catalog.Product, s State) Page {
	sorted := Sort(Filter(products, s.Search, s.Category), s.Sort)

	visible := min(max(s.VisibleCount, 0), len(sorted))
	return Page{
		Items:   sorted[:visible],
		Total:   len(sorted),
		Visible: visible,
		HasMore: visible < len(sorted),
	}
}
