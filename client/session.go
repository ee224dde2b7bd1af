package client

import (
	"context"
	"sync"

	"marketplace/internal/domain/access"
	"marketplace/internal/domain/entity"
)

// Decision is the outcome of a route guard check.
type Decision = access.Decision

// Session is the signed-in state of one user: the resolved principal and the cart.
type Session struct {
	client *Client
	cart   *CartStore

	mu        sync.RWMutex
	principal *entity.Principal
}

// NewSession creates a signed-out session with an empty cart.
func NewSession(client *Client) *Session {
	return &Session{
		client: client,
		cart:   NewCartStore(client, client.logger),
	}
}

// SignIn resolves the principal of the current token and loads the server cart.
func (s *Session) SignIn(ctx context.Context) (*Me, error) {
	me, err := s.client.Me(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.principal = me.Principal
	s.mu.Unlock()

	if err := s.cart.Sync(ctx); err != nil {
		return me, err
	}

	return me, nil
}

// SignOut forgets the principal and the local cart. The server cart is kept.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.principal = nil
	s.mu.Unlock()

	s.cart.reset()
}

// Principal returns the resolved principal, nil when signed out.
func (s *Session) Principal() *entity.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.principal
}

// Cart returns the cart store owned by this session.
func (s *Session) Cart() *CartStore {
	return s.cart
}

// LandingRoute is the route to open after sign in.
func (s *Session) LandingRoute() string {
	return access.LandingRoute(s.Principal())
}

// Guard decides locally whether path may be opened. The server enforces
// the same rules on every endpoint.
func (s *Session) Guard(path string) Decision {
	return access.Guard(s.Principal(), path)
}
