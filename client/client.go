// Package client is a Go client for the marketplace API. It carries the
// session-side logic of the web front end: the route guard and the cart store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

const defaultTimeout = 30 * time.Second

// TokenSource returns the current identity token of the signed-in user.
type TokenSource func(ctx context.Context) (string, error)

// StaticToken always returns token.
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) {
		return token, nil
	}
}

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// Client calls the marketplace HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used by the client and the stores it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, token TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		token:      token,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

// do sends a JSON request and decodes the data member of the envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to get identity token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrap(err, "failed to decode response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: env.Meta.RequestID}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(env.Data, out), "failed to decode response data")
}

// Me is the answer of GET /api/auth/me.
type Me struct {
	Identity     *entity.Identity  `json:"identity"`
	Principal    *entity.Principal `json:"principal"`
	LandingRoute string            `json:"landingRoute"`
}

// Me resolves the signed-in user.
func (c *Client) Me(ctx context.Context) (*Me, error) {
	var me Me
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &me); err != nil {
		return nil, err
	}

	return &me, nil
}

// GetCart returns the server cart.
func (c *Client) GetCart(ctx context.Context) (*entity.Cart, error) {
	var cart entity.Cart
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

// AddCartItem adds quantity units of a product to the server cart.
func (c *Client) AddCartItem(ctx context.Context, productID int64, quantity int) error {
	body := map[string]any{"productId": productID, "quantity": quantity}

	return c.do(ctx, http.MethodPost, "/api/cart/add", body, nil)
}

// SetCartQuantity sets the quantity of a cart line; zero or less removes it.
func (c *Client) SetCartQuantity(ctx context.Context, productID int64, quantity int) error {
	body := map[string]any{"quantity": quantity}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/%d", productID), body, nil)
}

// RemoveCartItem removes a line from the server cart.
func (c *Client) RemoveCartItem(ctx context.Context, productID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", productID), nil, nil)
}

// ClearCart empties the server cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/clear", nil, nil)
}

// Checkout places one order per seller from the server cart.
func (c *Client) Checkout(ctx context.Context, deliveryAddress string) ([]*entity.Order, error) {
	var orders []*entity.Order
	body := map[string]string{"deliveryAddress": deliveryAddress}
	if err := c.do(ctx, http.MethodPost, "/api/orders", body, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// Navigation asks the server whether the signed-in user may open path.
func (c *Client) Navigation(ctx context.Context, path string) (*Decision, error) {
	var decision Decision
	if err := c.do(ctx, http.MethodGet, "/api/navigation?path="+url.QueryEscape(path), nil, &decision); err != nil {
		return nil, err
	}

	return &decision, nil
}
