// internal/domain/catalog/entity.go
package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is a read-only product record as served by the catalog source
type Product struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Brand              string          `json:"brand"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
	Images             []string        `json:"images"`
}

// HasDiscount reports whether the product is on sale
func (p Product) HasDiscount() bool {
	return p.DiscountPercentage > 0 && p.DiscountPercentage < 100
}

// OriginalPrice returns the pre-discount price rounded to cents. Products
// without a usable discount return their current price.
func (p Product) OriginalPrice() decimal.Decimal {
	if !p.HasDiscount() {
		return p.Price
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(p.DiscountPercentage).Div(decimal.NewFromInt(100)))
	return p.Price.Div(factor).Round(2)
}

// Clone returns a deep copy so callers can hold a snapshot
func (p Product) Clone() Product {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

// ListResponse is the envelope returned by the product listing endpoint
type ListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// ProductView is a product as exposed to clients, with derived pricing
type ProductView struct {
	Product
	OriginalPrice decimal.Decimal `json:"original_price"`
	OnSale        bool            `json:"on_sale"`
}

// NewProductView decorates a product with its derived fields
func NewProductView(p Product) ProductView {
	return ProductView{
		Product:       p,
		OriginalPrice: p.OriginalPrice(),
		OnSale:        p.HasDiscount(),
	}
}
