package redis

import (
	"context"
	"slices"
	"strconv"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const cartKeySegment = "cart:"

// cartRepository keeps each cart in one hash: field = product ID, value = quantity.
type cartRepository struct {
	client    *goredis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewCartRepository creates a Redis-backed cart. A zero ttl keeps carts forever.
func NewCartRepository(client *goredis.Client, keyPrefix string, ttl time.Duration) repository.CartRepository {
	return &cartRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *cartRepository) key(ownerID uuid.UUID) string {
	return r.keyPrefix + cartKeySegment + ownerID.String()
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	fields, err := r.client.HGetAll(ctx, r.key(ownerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart := &entity.Cart{OwnerID: ownerID, Lines: make([]entity.CartLine, 0, len(fields))}
	for field, value := range fields {
		productID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cart field %q", field)
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cart quantity for product %d", productID)
		}
		if quantity <= 0 {
			continue
		}
		cart.Lines = append(cart.Lines, entity.CartLine{ProductID: productID, Quantity: quantity})
	}

	slices.SortFunc(cart.Lines, func(a, b entity.CartLine) int {
		switch {
		case a.ProductID < b.ProductID:
			return -1
		case a.ProductID > b.ProductID:
			return 1
		default:
			return 0
		}
	})

	return cart, nil
}

// AddQuantity increments the line atomically with HINCRBY.
func (r *cartRepository) AddQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, delta int) (int, error) {
	key := r.key(ownerID)
	field := strconv.FormatInt(productID, 10)

	quantity, err := r.client.HIncrBy(ctx, key, field, int64(delta)).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to add cart line")
	}

	if quantity <= 0 {
		if err := r.client.HDel(ctx, key, field).Err(); err != nil {
			return 0, errors.Wrap(err, "failed to remove cart line")
		}

		return 0, nil
	}

	if err := r.touch(ctx, key); err != nil {
		return 0, err
	}

	return int(quantity), nil
}

func (r *cartRepository) SetQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, quantity int) error {
	if quantity <= 0 {
		return r.RemoveLine(ctx, ownerID, productID)
	}

	key := r.key(ownerID)
	if err := r.client.HSet(ctx, key, strconv.FormatInt(productID, 10), quantity).Err(); err != nil {
		return errors.Wrap(err, "failed to set cart line")
	}

	return r.touch(ctx, key)
}

func (r *cartRepository) RemoveLine(ctx context.Context, ownerID uuid.UUID, productID int64) error {
	if err := r.client.HDel(ctx, r.key(ownerID), strconv.FormatInt(productID, 10)).Err(); err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := r.client.Del(ctx, r.key(ownerID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// touch refreshes the cart expiry after a write.
func (r *cartRepository) touch(ctx context.Context, key string) error {
	if r.ttl <= 0 {
		return nil
	}

	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to refresh cart expiry")
	}

	return nil
}
