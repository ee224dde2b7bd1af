package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item listed by a seller.
type Product struct {
	ID          int64           `json:"id"`
	SellerID    uuid.UUID       `json:"sellerId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IsPurchasable reports whether the product can be added to a cart.
func (p *Product) IsPurchasable() bool {
	return p.IsActive && p.Stock > 0
}

// HasStock reports whether quantity units can be taken from stock.
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.Stock
}
