package postgres

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestOrder(t *testing.T, db *gorm.DB, status entity.OrderStatus) *entity.Order {
	t.Helper()

	customer := createTestAccount(t, db, entity.RoleCustomer)
	seller := createTestAccount(t, db, entity.RoleSeller)
	product := createTestProduct(t, db, seller.ID, "4.25")

	order := &entity.Order{
		CustomerID:      customer.ID,
		SellerID:        seller.ID,
		Status:          status,
		DeliveryAddress: "3 Home Rd",
		Items: []entity.OrderItem{
			{ProductID: product.ID, Name: product.Name, Quantity: 2, UnitPrice: product.Price},
		},
	}
	order.Total = order.CalculateTotal()
	require.NoError(t, NewOrderRepository(db).CreateOrder(context.Background(), order))

	return order
}

func TestOrderRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := createTestOrder(t, db, entity.OrderPending)
	assert.NotZero(t, order.ID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, order.ID, order.Items[0].OrderID)

	found, err := repo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, found.Status)
	assert.True(t, found.Total.Equal(decimal.RequireFromString("8.50")))
	require.Len(t, found.Items, 1)
	assert.Equal(t, 2, found.Items[0].Quantity)
	assert.Nil(t, found.CourierID)

	_, err = repo.FindOrderByID(ctx, order.ID+100)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := createTestOrder(t, db, entity.OrderPending)

	t.Run("compare and set succeeds", func(t *testing.T) {
		err := repo.UpdateOrderStatus(ctx, entity.OrderStatusChange{
			OrderID: order.ID, From: entity.OrderPending, To: entity.OrderAccepted,
		})
		require.NoError(t, err)

		found, err := repo.FindOrderByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderAccepted, found.Status)
	})

	t.Run("stale from status conflicts", func(t *testing.T) {
		err := repo.UpdateOrderStatus(ctx, entity.OrderStatusChange{
			OrderID: order.ID, From: entity.OrderPending, To: entity.OrderRejected,
		})
		assert.ErrorIs(t, err, repository.ErrOrderStatusConflict)
	})

	t.Run("missing order", func(t *testing.T) {
		err := repo.UpdateOrderStatus(ctx, entity.OrderStatusChange{
			OrderID: order.ID + 100, From: entity.OrderPending, To: entity.OrderAccepted,
		})
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})

	t.Run("assigns courier with the transition", func(t *testing.T) {
		courier := uuid.New()
		err := repo.UpdateOrderStatus(ctx, entity.OrderStatusChange{
			OrderID: order.ID, From: entity.OrderAccepted, To: entity.OrderPreparing, AssignToID: &courier,
		})
		require.NoError(t, err)

		found, err := repo.FindOrderByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, found.CourierID)
		assert.Equal(t, courier, *found.CourierID)

		other := uuid.New()
		err = repo.UpdateOrderStatus(ctx, entity.OrderStatusChange{
			OrderID: order.ID, From: entity.OrderPreparing, To: entity.OrderOutForDelivery, AssignToID: &other,
		})
		assert.ErrorIs(t, err, repository.ErrOrderStatusConflict)
	})
}

func TestOrderRepository_ListOrders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	pending := createTestOrder(t, db, entity.OrderPending)
	accepted := createTestOrder(t, db, entity.OrderAccepted)

	byCustomer, err := repo.ListOrders(ctx, repository.OrderFilter{CustomerID: &pending.CustomerID})
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, pending.ID, byCustomer[0].ID)

	available, err := repo.ListOrders(ctx, repository.OrderFilter{
		Statuses:       []entity.OrderStatus{entity.OrderAccepted, entity.OrderPreparing},
		UnassignedOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, accepted.ID, available[0].ID)
	assert.Len(t, available[0].Items, 1)

	bySeller, err := repo.ListOrders(ctx, repository.OrderFilter{SellerID: &accepted.SellerID})
	require.NoError(t, err)
	assert.Len(t, bySeller, 1)
}

func TestOrderRepository_StatusHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := createTestOrder(t, db, entity.OrderPending)
	actor := uuid.New()

	require.NoError(t, repo.CreateStatusHistory(ctx, &entity.OrderStatusHistory{
		OrderID: order.ID, FromStatus: entity.OrderPending, ToStatus: entity.OrderAccepted, ActorID: actor, ActorRole: entity.RoleSeller,
	}))
	require.NoError(t, repo.CreateStatusHistory(ctx, &entity.OrderStatusHistory{
		OrderID: order.ID, FromStatus: entity.OrderAccepted, ToStatus: entity.OrderCancelled, ActorID: actor, ActorRole: entity.RoleSeller,
	}))

	history, err := repo.ListStatusHistory(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, entity.OrderAccepted, history[0].ToStatus)
	assert.Equal(t, entity.OrderCancelled, history[1].ToStatus)
	assert.Equal(t, entity.RoleSeller, history[1].ActorRole)
}
