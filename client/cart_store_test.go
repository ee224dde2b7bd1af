package client

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartAPI struct {
	mu    sync.Mutex
	calls []string
	err   error
	cart  *entity.Cart
}

func (f *fakeCartAPI) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)

	return f.err
}

func (f *fakeCartAPI) GetCart(context.Context) (*entity.Cart, error) {
	if err := f.record("get"); err != nil {
		return nil, err
	}

	return f.cart, nil
}

func (f *fakeCartAPI) AddCartItem(context.Context, int64, int) error {
	return f.record("add")
}

func (f *fakeCartAPI) SetCartQuantity(context.Context, int64, int) error {
	return f.record("set")
}

func (f *fakeCartAPI) RemoveCartItem(context.Context, int64) error {
	return f.record("remove")
}

func (f *fakeCartAPI) ClearCart(context.Context) error {
	return f.record("clear")
}

func TestCartStore_AddThenRemove(t *testing.T) {
	api := &fakeCartAPI{}
	store := NewCartStore(api, nil)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, 7, 2))
	assert.Equal(t, 2, store.TotalItems())

	require.NoError(t, store.RemoveItem(ctx, 7))
	assert.Equal(t, 0, store.TotalItems())
	assert.Empty(t, store.Lines())
	assert.Equal(t, []string{"add", "remove"}, api.calls)
}

func TestCartStore_AddMergesLines(t *testing.T) {
	store := NewCartStore(&fakeCartAPI{}, nil)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, 7, 2))
	require.NoError(t, store.AddItem(ctx, 9, 1))
	require.NoError(t, store.AddItem(ctx, 7, 3))

	assert.Equal(t, []entity.CartLine{
		{ProductID: 7, Quantity: 5},
		{ProductID: 9, Quantity: 1},
	}, store.Lines())
	assert.Equal(t, 6, store.TotalItems())
}

func TestCartStore_AddRejectsNonPositiveQuantity(t *testing.T) {
	api := &fakeCartAPI{}
	store := NewCartStore(api, nil)

	err := store.AddItem(context.Background(), 7, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Empty(t, store.Lines())
	assert.Empty(t, api.calls)
}

func TestCartStore_SetQuantity(t *testing.T) {
	api := &fakeCartAPI{}
	store := NewCartStore(api, nil)
	ctx := context.Background()

	require.NoError(t, store.AddItem(ctx, 7, 2))
	require.NoError(t, store.SetQuantity(ctx, 7, 4))
	assert.Equal(t, 4, store.TotalItems())

	require.NoError(t, store.SetQuantity(ctx, 7, 0))
	assert.Equal(t, 0, store.TotalItems())
	assert.Equal(t, []string{"add", "set", "remove"}, api.calls)
}

func TestCartStore_ServerFailureKeepsLocalState(t *testing.T) {
	api := &fakeCartAPI{err: errors.New("server down")}
	store := NewCartStore(api, nil)
	ctx := context.Background()

	err := store.AddItem(ctx, 7, 2)
	require.Error(t, err)
	assert.Equal(t, 2, store.TotalItems())

	err = store.Clear(ctx)
	require.Error(t, err)
	assert.Equal(t, 0, store.TotalItems())
}

func TestCartStore_Sync(t *testing.T) {
	api := &fakeCartAPI{cart: &entity.Cart{Lines: []entity.CartLine{{ProductID: 3, Quantity: 4}}}}
	store := NewCartStore(api, nil)

	require.NoError(t, store.AddItem(context.Background(), 7, 1))
	require.NoError(t, store.Sync(context.Background()))

	assert.Equal(t, []entity.CartLine{{ProductID: 3, Quantity: 4}}, store.Lines())
}

func TestCartStore_JSONRoundTrip(t *testing.T) {
	store := NewCartStore(&fakeCartAPI{}, nil)
	require.NoError(t, store.AddItem(context.Background(), 7, 2))

	data, err := json.Marshal(store)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[{"productId":7,"quantity":2}]}`, string(data))

	restored := NewCartStore(&fakeCartAPI{}, nil)
	require.NoError(t, json.Unmarshal([]byte(`{"lines":[{"productId":7,"quantity":2},{"productId":8,"quantity":0}]}`), restored))
	assert.Equal(t, []entity.CartLine{{ProductID: 7, Quantity: 2}}, restored.Lines())
}
