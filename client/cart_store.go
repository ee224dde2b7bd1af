package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

// ErrInvalidQuantity is returned when adding zero or fewer units.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// cartAPI is the server side of the cart.
type cartAPI interface {
	GetCart(ctx context.Context) (*entity.Cart, error)
	AddCartItem(ctx context.Context, productID int64, quantity int) error
	SetCartQuantity(ctx context.Context, productID int64, quantity int) error
	RemoveCartItem(ctx context.Context, productID int64) error
	ClearCart(ctx context.Context) error
}

// CartStore is the optimistic local cart. Every mutation changes local state
// first and then calls the server. A failed call is logged and returned but
// the local change is kept; Sync reconciles with the server.
type CartStore struct {
	api    cartAPI
	logger *slog.Logger

	mu    sync.RWMutex
	lines []entity.CartLine
}

// NewCartStore creates an empty cart backed by api.
func NewCartStore(api cartAPI, logger *slog.Logger) *CartStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &CartStore{api: api, logger: logger}
}

// AddItem adds quantity units of a product, merging with an existing line.
func (s *CartStore) AddItem(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	if i := s.indexOf(productID); i >= 0 {
		s.lines[i].Quantity += quantity
	} else {
		s.lines = append(s.lines, entity.CartLine{ProductID: productID, Quantity: quantity})
	}
	s.mu.Unlock()

	return s.report("add", productID, s.api.AddCartItem(ctx, productID, quantity))
}

// RemoveItem drops the line of a product.
func (s *CartStore) RemoveItem(ctx context.Context, productID int64) error {
	s.mu.Lock()
	s.remove(productID)
	s.mu.Unlock()

	return s.report("remove", productID, s.api.RemoveCartItem(ctx, productID))
}

// SetQuantity replaces the quantity of a line; zero or less removes it.
func (s *CartStore) SetQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}

	s.mu.Lock()
	if i := s.indexOf(productID); i >= 0 {
		s.lines[i].Quantity = quantity
	} else {
		s.lines = append(s.lines, entity.CartLine{ProductID: productID, Quantity: quantity})
	}
	s.mu.Unlock()

	return s.report("set_quantity", productID, s.api.SetCartQuantity(ctx, productID, quantity))
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) error {
	s.reset()

	return s.report("clear", 0, s.api.ClearCart(ctx))
}

// Sync replaces the local lines with the server cart.
func (s *CartStore) Sync(ctx context.Context) error {
	cart, err := s.api.GetCart(ctx)
	if err != nil {
		return s.report("sync", 0, err)
	}

	s.mu.Lock()
	s.lines = append([]entity.CartLine(nil), cart.Lines...)
	s.mu.Unlock()

	return nil
}

// TotalItems is the sum of all quantities.
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}

	return total
}

// Lines returns a copy of the cart lines in insertion order.
func (s *CartStore) Lines() []entity.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.CartLine(nil), s.lines...)
}

type cartSnapshot struct {
	Lines []entity.CartLine `json:"lines"`
}

// MarshalJSON serializes the local lines so the cart can be persisted.
func (s *CartStore) MarshalJSON() ([]byte, error) {
	return json.Marshal(cartSnapshot{Lines: s.Lines()})
}

// UnmarshalJSON restores persisted lines. Lines without a positive quantity are dropped.
func (s *CartStore) UnmarshalJSON(data []byte) error {
	var snapshot cartSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return errors.WithStack(err)
	}

	lines := make([]entity.CartLine, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		if line.Quantity > 0 {
			lines = append(lines, line)
		}
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()

	return nil
}

func (s *CartStore) reset() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// indexOf must be called with mu held.
func (s *CartStore) indexOf(productID int64) int {
	for i, line := range s.lines {
		if line.ProductID == productID {
			return i
		}
	}

	return -1
}

// remove must be called with mu held.
func (s *CartStore) remove(productID int64) {
	if i := s.indexOf(productID); i >= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	}
}

func (s *CartStore) report(op string, productID int64, err error) error {
	if err == nil {
		return nil
	}

	s.logger.Warn("Cart sync with server failed",
		slog.String("op", op),
		slog.Int64("product_id", productID),
		slog.Any("error", err),
	)

	return err
}
