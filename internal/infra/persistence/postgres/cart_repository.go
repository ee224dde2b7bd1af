package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository stores carts in the 'cart_items' table.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for the Postgres-backed cart.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Order("product_id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart := &entity.Cart{OwnerID: ownerID, Lines: make([]entity.CartLine, 0, len(itemModels))}
	for _, item := range itemModels {
		cart.Lines = append(cart.Lines, entity.CartLine{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return cart, nil
}

// AddQuantity upserts the line, adding delta to any existing quantity.
func (repo *cartRepository) AddQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, delta int) (int, error) {
	now := time.Now()
	item := &model.CartItemModel{
		OwnerID:   ownerID,
		ProductID: productID,
		Quantity:  delta,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   gorm.Expr("cart_items.quantity + ?", delta),
				"updated_at": now,
			}),
		}).
		Create(item).Error; err != nil {
		return 0, errors.Wrap(err, "failed to add cart line")
	}

	var stored model.CartItemModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		First(&stored).Error; err != nil {
		return 0, errors.Wrap(err, "failed to read cart line")
	}

	if stored.Quantity <= 0 {
		if err := repo.RemoveLine(ctx, ownerID, productID); err != nil {
			return 0, err
		}

		return 0, nil
	}

	return stored.Quantity, nil
}

// SetQuantity overwrites the line; a non-positive quantity removes it.
func (repo *cartRepository) SetQuantity(ctx context.Context, ownerID uuid.UUID, productID int64, quantity int) error {
	if quantity <= 0 {
		return repo.RemoveLine(ctx, ownerID, productID)
	}

	now := time.Now()
	item := &model.CartItemModel{
		OwnerID:   ownerID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(item).Error; err != nil {
		return errors.Wrap(err, "failed to set cart line")
	}

	return nil
}

func (repo *cartRepository) RemoveLine(ctx context.Context, ownerID uuid.UUID, productID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

func (repo *cartRepository) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
