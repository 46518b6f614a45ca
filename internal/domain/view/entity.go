// internal/domain/view/entity.go
package view

import (
	"errors"
	"fmt"
)

// Screen is the navigational screen the visitor is on
type Screen string

const (
	ScreenProducts Screen = "products"
	ScreenCart     Screen = "cart"
	ScreenHistory  Screen = "history"
	ScreenTracking Screen = "tracking"
)

// SortKey selects the ordering of the product list
type SortKey string

const (
	SortDefault    SortKey = "default"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortNameAsc    SortKey = "name-asc"
)

// Mode is the product list layout
type Mode string

const (
	ModeGrid Mode = "grid"
	ModeList Mode = "list"
)

// AllCategories is the category sentinel that disables category filtering
const AllCategories = "all"

var (
	ErrInvalidScreen  = errors.New("invalid screen")
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrInvalidMode    = errors.New("invalid view mode")
)

// sortAliases accepts the short names used by older clients
var sortAliases = map[string]SortKey{
	"":            SortDefault,
	"default":     SortDefault,
	"price-asc":   SortPriceAsc,
	"price-low":   SortPriceAsc,
	"price-desc":  SortPriceDesc,
	"price-high":  SortPriceDesc,
	"rating":      SortRatingDesc,
	"rating-desc": SortRatingDesc,
	"name":        SortNameAsc,
	"name-asc":    SortNameAsc,
}

// ParseSortKey resolves a sort key or one of its aliases
func ParseSortKey(s string) (SortKey, error) {
	key, ok := sortAliases[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return key, nil
}

// ParseScreen validates a screen name
func ParseScreen(s string) (Screen, error) {
	switch sc := Screen(s); sc {
	case ScreenProducts, ScreenCart, ScreenHistory, ScreenTracking:
		return sc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScreen, s)
}

// ParseMode validates a view mode
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeGrid, ModeList:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
