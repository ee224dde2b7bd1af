package entity

import "github.com/google/uuid"

// CartLine is one product entry of a server-side cart.
type CartLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Cart is the server-side cart of one account.
type Cart struct {
	OwnerID uuid.UUID  `json:"ownerId"`
	Lines   []CartLine `json:"lines"`
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
