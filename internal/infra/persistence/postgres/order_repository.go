package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder persists the order together with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references unknown account or product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range order.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.ID
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrders lists orders with items, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).Preload("Items")
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.CourierID != nil {
		query = query.Where("courier_id = ?", *filter.CourierID)
	}
	if filter.UnassignedOnly {
		query = query.Where("courier_id IS NULL")
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = string(status)
		}
		query = query.Where("status IN ?", statuses)
	}

	if err := query.Order("created_at DESC").Order("id DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus moves the order to change.To only while it is still in change.From.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, change entity.OrderStatusChange) error {
	updates := map[string]any{
		"status":     string(change.To),
		"updated_at": time.Now(),
	}

	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", change.OrderID, string(change.From))
	if change.AssignToID != nil {
		updates["courier_id"] = *change.AssignToID
		query = query.Where("(courier_id IS NULL OR courier_id = ?)", *change.AssignToID)
	}

	result := query.Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where("id = ?", change.OrderID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check order existence")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrOrderStatusConflict
	}

	return nil
}

// CreateStatusHistory appends an audit row for a transition.
func (repo *orderRepository) CreateStatusHistory(ctx context.Context, history *entity.OrderStatusHistory) error {
	historyM := &model.OrderStatusHistoryModel{
		OrderID:    history.OrderID,
		FromStatus: string(history.FromStatus),
		ToStatus:   string(history.ToStatus),
		ActorID:    history.ActorID,
		ActorRole:  string(history.ActorRole),
		CreatedAt:  history.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record order status history")
	}

	history.ID = historyM.ID
	history.CreatedAt = historyM.CreatedAt

	return nil
}

// ListStatusHistory returns the transitions of an order in the order they happened.
func (repo *orderRepository) ListStatusHistory(ctx context.Context, orderID int64) ([]*entity.OrderStatusHistory, error) {
	var historyModels []*model.OrderStatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order status history")
	}

	history := make([]*entity.OrderStatusHistory, 0, len(historyModels))
	for _, h := range historyModels {
		history = append(history, &entity.OrderStatusHistory{
			ID:         h.ID,
			OrderID:    h.OrderID,
			FromStatus: entity.OrderStatus(h.FromStatus),
			ToStatus:   entity.OrderStatus(h.ToStatus),
			ActorID:    h.ActorID,
			ActorRole:  entity.Role(h.ActorRole),
			CreatedAt:  h.CreatedAt,
		})
	}

	return history, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		SellerID:        data.SellerID,
		CourierID:       data.CourierID,
		Status:          entity.OrderStatus(data.Status),
		Total:           data.Total,
		DeliveryAddress: data.DeliveryAddress,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		SellerID:        data.SellerID,
		CourierID:       data.CourierID,
		Status:          string(data.Status),
		Total:           data.Total,
		DeliveryAddress: data.DeliveryAddress,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
