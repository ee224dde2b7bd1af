package impl

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

// availableStatuses are the statuses in which an unassigned order is offered to couriers.
var availableStatuses = []entity.OrderStatus{entity.OrderAccepted, entity.OrderPreparing}

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	profileRepo repository.ProfileRepository
	cartRepo    repository.CartRepository
	publisher   service.EventPublisher
	broadcaster service.OrderBroadcaster
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ProfileRepo repository.ProfileRepository
	CartRepo    repository.CartRepository
	Publisher   service.EventPublisher
	Broadcaster service.OrderBroadcaster `optional:"true"`
	Logger      *slog.Logger
}

// NewOrderService creates the order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		profileRepo: params.ProfileRepo,
		cartRepo:    params.CartRepo,
		publisher:   params.Publisher,
		broadcaster: params.Broadcaster,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout creates one pending order per seller from the customer's cart.
// Orders are written in one transaction; clearing the cart happens
// afterwards and its failure does not undo the orders.
func (srv *orderService) Checkout(ctx context.Context, customerID uuid.UUID, input *usecase.CheckoutInput) ([]*entity.Order, error) {
	address := strings.TrimSpace(input.DeliveryAddress)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("delivery address is required")
	}

	cart, err := srv.cartRepo.GetCart(ctx, customerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	var orders []*entity.Order
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()
		orderRepo := factory.NewOrderRepository()

		ids := make([]int64, 0, len(cart.Lines))
		for _, line := range cart.Lines {
			ids = append(ids, line.ProductID)
		}
		products, err := productRepo.FindProductsByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to load cart products")
		}

		built, err := buildOrders(customerID, address, cart, products)
		if err != nil {
			return err
		}

		for _, order := range built {
			for _, item := range order.Items {
				err := productRepo.ReserveStock(ctx, item.ProductID, item.Quantity)
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock.WrapMessage("product " + strconv.FormatInt(item.ProductID, 10))
				}
				if err != nil {
					return errors.Wrap(err, "failed to reserve stock")
				}
			}
			if err := orderRepo.CreateOrder(ctx, order); err != nil {
				return errors.Wrap(err, "failed to create order")
			}
		}
		orders = built

		return nil
	})
	if err != nil {
		return nil, mapTxError(err)
	}

	if err := srv.cartRepo.Clear(ctx, customerID); err != nil {
		srv.log(ctx).Error("Failed to clear cart after checkout",
			slog.String("customer_id", customerID.String()),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Checkout completed",
		slog.String("customer_id", customerID.String()),
		slog.Int("orders", len(orders)),
	)

	return orders, nil
}

// buildOrders groups cart lines by seller and prices them at the current product price.
func buildOrders(customerID uuid.UUID, address string, cart *entity.Cart, products []*entity.Product) ([]*entity.Order, error) {
	byID := make(map[int64]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	now := time.Now()
	bySeller := make(map[uuid.UUID]*entity.Order)
	requested := make(map[int64]int, len(cart.Lines))
	var orders []*entity.Order
	for _, line := range cart.Lines {
		if line.Quantity <= 0 {
			continue
		}
		product, ok := byID[line.ProductID]
		if !ok || !product.IsPurchasable() {
			return nil, domainerrors.ErrProductUnavailable.WrapMessage("product " + strconv.FormatInt(line.ProductID, 10))
		}
		requested[product.ID] += line.Quantity
		if !product.HasStock(requested[product.ID]) {
			return nil, domainerrors.ErrInsufficientStock.WrapMessage("product " + strconv.FormatInt(line.ProductID, 10))
		}

		order, ok := bySeller[product.SellerID]
		if !ok {
			order = &entity.Order{
				CustomerID:      customerID,
				SellerID:        product.SellerID,
				Status:          entity.OrderPending,
				DeliveryAddress: address,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			bySeller[product.SellerID] = order
			orders = append(orders, order)
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}
	if len(orders) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	for _, order := range orders {
		order.Total = order.CalculateTotal()
	}

	return orders, nil
}

func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	return srv.listOrders(ctx, repository.OrderFilter{CustomerID: &customerID})
}

func (srv *orderService) ListSellerOrders(ctx context.Context, sellerID uuid.UUID, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	if err := validateStatuses(statuses); err != nil {
		return nil, err
	}

	return srv.listOrders(ctx, repository.OrderFilter{SellerID: &sellerID, Statuses: statuses})
}

func (srv *orderService) ListCourierOrders(ctx context.Context, courierID uuid.UUID) ([]*entity.Order, error) {
	return srv.listOrders(ctx, repository.OrderFilter{CourierID: &courierID})
}

func (srv *orderService) ListAllOrders(ctx context.Context, statuses []entity.OrderStatus) ([]*entity.Order, error) {
	if err := validateStatuses(statuses); err != nil {
		return nil, err
	}

	return srv.listOrders(ctx, repository.OrderFilter{Statuses: statuses})
}

func (srv *orderService) listOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// ListAvailableOrders offers unassigned orders to couriers, nearest seller first.
// Sellers without coordinates sort last, newest order first among equals.
func (srv *orderService) ListAvailableOrders(ctx context.Context, origin *usecase.Location) ([]*usecase.AvailableOrder, error) {
	orders, err := srv.listOrders(ctx, repository.OrderFilter{Statuses: availableStatuses, UnassignedOnly: true})
	if err != nil {
		return nil, err
	}

	sellers := make(map[uuid.UUID]*entity.SellerProfile)
	available := make([]*usecase.AvailableOrder, 0, len(orders))
	for _, order := range orders {
		seller, ok := sellers[order.SellerID]
		if !ok {
			seller, err = srv.profileRepo.FindSellerProfile(ctx, order.SellerID)
			if err != nil && !errors.Is(err, repository.ErrSellerProfileNotFound) {
				return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find seller profile")
			}
			sellers[order.SellerID] = seller
		}

		item := &usecase.AvailableOrder{Order: order}
		if seller != nil {
			item.SellerName = seller.BusinessName
			if origin != nil && seller.HasLocation() {
				km := distanceKm(*origin, usecase.Location{Lat: *seller.Latitude, Lng: *seller.Longitude})
				item.DistanceKm = &km
			}
		}
		available = append(available, item)
	}

	sort.SliceStable(available, func(i, j int) bool {
		a, b := available[i].DistanceKm, available[j].DistanceKm
		switch {
		case a != nil && b != nil:
			return *a < *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	return available, nil
}

// distanceKm returns the great-circle distance between two coordinates.
func distanceKm(from, to usecase.Location) float64 {
	return geo.DistanceHaversine(orb.Point{from.Lng, from.Lat}, orb.Point{to.Lng, to.Lat}) / 1000
}

// GetOrder returns the order if the principal is one of its parties or an admin.
// Other callers get not found so order IDs cannot be enumerated.
func (srv *orderService) GetOrder(ctx context.Context, principal *entity.Principal, orderID int64) (*entity.Order, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if principal.Role != entity.RoleAdmin && !order.IsParty(principal.AccountID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (srv *orderService) GetOrderHistory(ctx context.Context, principal *entity.Principal, orderID int64) ([]*entity.OrderStatusHistory, error) {
	if _, err := srv.GetOrder(ctx, principal, orderID); err != nil {
		return nil, err
	}

	history, err := srv.orderRepo.ListStatusHistory(ctx, orderID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list order history")
	}

	return history, nil
}

// TransitionStatus validates and applies one lifecycle step.
//
// The status value is checked first, then the transition table, then the
// caller's right to perform it. The update is a compare-and-set on the
// current status written together with its history row; event publishing
// and live broadcast happen after commit and never undo the change.
func (srv *orderService) TransitionStatus(ctx context.Context, principal *entity.Principal, orderID int64, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status " + string(next))
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage(string(order.Status) + " -> " + string(next))
	}

	actor, err := resolveTransitionActor(principal, order, next)
	if err != nil {
		return nil, err
	}

	change := entity.OrderStatusChange{
		OrderID:   order.ID,
		From:      order.Status,
		To:        next,
		ActorID:   principal.AccountID,
		ActorRole: principal.Role,
	}
	if actor == entity.ActorCourier && order.CourierID == nil {
		courierID := principal.AccountID
		change.AssignToID = &courierID
	}

	now := time.Now()
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orderRepo := factory.NewOrderRepository()
		if err := orderRepo.UpdateOrderStatus(ctx, change); err != nil {
			return err
		}

		if next.ReleasesStock() {
			productRepo := factory.NewProductRepository()
			for _, item := range order.Items {
				if err := productRepo.ReleaseStock(ctx, item.ProductID, item.Quantity); err != nil {
					return errors.Wrap(err, "failed to release stock")
				}
			}
		}

		return orderRepo.CreateStatusHistory(ctx, &entity.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: change.From,
			ToStatus:   change.To,
			ActorID:    change.ActorID,
			ActorRole:  change.ActorRole,
			CreatedAt:  now,
		})
	})
	switch {
	case errors.Is(err, repository.ErrOrderStatusConflict):
		return nil, domainerrors.ErrOrderStatusConflict
	case errors.Is(err, repository.ErrOrderNotFound):
		return nil, domainerrors.ErrOrderNotFound
	case err != nil:
		return nil, mapTxError(err)
	}

	order.Status = next
	order.UpdatedAt = now
	if change.AssignToID != nil {
		order.CourierID = change.AssignToID
	}

	srv.log(ctx).Info("Order status changed",
		slog.Int64("order_id", order.ID),
		slog.String("from", string(change.From)),
		slog.String("to", string(next)),
		slog.String("actor", string(actor)),
		slog.String("actor_id", principal.AccountID.String()),
	)

	srv.announce(ctx, order, change.From, principal.AccountID)

	return order, nil
}

// announce publishes the transition and pushes it to live subscribers.
func (srv *orderService) announce(ctx context.Context, order *entity.Order, from entity.OrderStatus, actorID uuid.UUID) {
	event := entity.NewOrderStatusChangedEvent(order, from, actorID)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if srv.publisher != nil {
		if err := srv.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
			srv.log(ctx).Error("Failed to publish order event",
				slog.Int64("order_id", order.ID),
				slog.Any("error", err),
			)
		}
	}
	if srv.broadcaster != nil {
		srv.broadcaster.BroadcastOrderEvent(event)
	}
}

// resolveTransitionActor decides in which capacity the principal acts on
// the order and whether that capacity may move it to next.
func resolveTransitionActor(principal *entity.Principal, order *entity.Order, next entity.OrderStatus) (entity.TransitionActor, error) {
	allowed := entity.AllowedActors(next)
	isAllowed := func(actor entity.TransitionActor) bool {
		for _, candidate := range allowed {
			if candidate == actor {
				return true
			}
		}

		return false
	}

	var party bool
	switch principal.Role {
	case entity.RoleAdmin:
		if isAllowed(entity.ActorAdmin) {
			return entity.ActorAdmin, nil
		}
		party = true
	case entity.RoleSeller:
		if order.SellerID == principal.AccountID {
			if isAllowed(entity.ActorSeller) {
				return entity.ActorSeller, nil
			}
			party = true
		}
	case entity.RoleDelivery:
		if isAllowed(entity.ActorCourier) {
			if !principal.IsApproved() {
				return "", domainerrors.ErrDeliveryNotApproved
			}
			if order.CourierID != nil && *order.CourierID != principal.AccountID {
				return "", domainerrors.ErrOrderAssigned
			}

			return entity.ActorCourier, nil
		}
		party = order.CourierID != nil && *order.CourierID == principal.AccountID
	}

	if order.CustomerID == principal.AccountID {
		if isAllowed(entity.ActorCustomer) {
			return entity.ActorCustomer, nil
		}
		party = true
	}

	if party {
		return "", domainerrors.ErrRoleNotAllowed.WrapMessage("cannot move order to " + string(next))
	}

	return "", domainerrors.ErrNotOrderParty
}

func (srv *orderService) findOrder(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return order, nil
}

func validateStatuses(statuses []entity.OrderStatus) error {
	for _, status := range statuses {
		if !status.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown order status " + string(status))
		}
	}

	return nil
}
