package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	profileRepo *mockRepo.MockProfileRepository
	cartRepo    *mockRepo.MockCartRepository
	publisher   *mockSvc.MockEventPublisher
	broadcaster *mockSvc.MockOrderBroadcaster

	txOrderRepo   *mockRepo.MockOrderRepository
	txProductRepo *mockRepo.MockProductRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fixtures := orderServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		orderRepo:     mockRepo.NewMockOrderRepository(t),
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		cartRepo:      mockRepo.NewMockCartRepository(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		broadcaster:   mockSvc.NewMockOrderBroadcaster(t),
		txOrderRepo:   mockRepo.NewMockOrderRepository(t),
		txProductRepo: mockRepo.NewMockProductRepository(t),
	}
	fixtures.service = NewOrderService(OrderServiceParams{
		TxManager:   fixtures.txManager,
		OrderRepo:   fixtures.orderRepo,
		ProfileRepo: fixtures.profileRepo,
		CartRepo:    fixtures.cartRepo,
		Publisher:   fixtures.publisher,
		Broadcaster: fixtures.broadcaster,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

func (f orderServiceFixtures) expectTx(t *testing.T) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewOrderRepository().Return(f.txOrderRepo).Maybe()
			factory.EXPECT().NewProductRepository().Return(f.txProductRepo).Maybe()

			return fn(factory)
		})
}

func (f orderServiceFixtures) expectAnnounce(t *testing.T, to entity.OrderStatus) {
	f.publisher.EXPECT().
		PublishOrderStatusChanged(mock.Anything, mock.MatchedBy(func(e *entity.OrderStatusChangedEvent) bool {
			return e.To == to && e.Type == entity.EventTypeOrderStatusChanged
		})).
		Return(nil)
	f.broadcaster.EXPECT().BroadcastOrderEvent(mock.AnythingOfType("*entity.OrderStatusChangedEvent")).Return()
}

func TestOrderService_TransitionStatus_SellerAcceptsOwnPendingOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	seller := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalApproved}
	order := &entity.Order{ID: 42, SellerID: seller.AccountID, CustomerID: uuid.New(), Status: entity.OrderPending}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(42)).Return(order, nil)
	fx.expectTx(t)
	fx.txOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, mock.MatchedBy(func(c entity.OrderStatusChange) bool {
			return c.OrderID == 42 && c.From == entity.OrderPending && c.To == entity.OrderAccepted && c.AssignToID == nil
		})).
		Return(nil)
	fx.txOrderRepo.EXPECT().
		CreateStatusHistory(ctx, mock.MatchedBy(func(h *entity.OrderStatusHistory) bool {
			return h.FromStatus == entity.OrderPending && h.ToStatus == entity.OrderAccepted && h.ActorRole == entity.RoleSeller
		})).
		Return(nil)
	fx.expectAnnounce(t, entity.OrderAccepted)

	updated, err := fx.service.TransitionStatus(ctx, seller, 42, entity.OrderAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderAccepted, updated.Status)
}

func TestOrderService_TransitionStatus_FromTerminalIsRejected(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	seller := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalApproved}
	order := &entity.Order{ID: 42, SellerID: seller.AccountID, Status: entity.OrderDelivered}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(42)).Return(order, nil)

	_, err := fx.service.TransitionStatus(ctx, seller, 42, entity.OrderAccepted)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, entity.OrderDelivered, order.Status)
}

func TestOrderService_TransitionStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.TransitionStatus(context.Background(), &entity.Principal{Role: entity.RoleAdmin}, 1, entity.OrderStatus("shipped"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_TransitionStatus_Authorization(t *testing.T) {
	customerID := uuid.New()
	sellerID := uuid.New()
	courierID := uuid.New()

	tests := []struct {
		name      string
		principal *entity.Principal
		order     *entity.Order
		next      entity.OrderStatus
		wantErr   error
	}{
		{
			name:      "other seller cannot accept",
			principal: &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalApproved},
			order:     &entity.Order{ID: 1, SellerID: sellerID, CustomerID: customerID, Status: entity.OrderPending},
			next:      entity.OrderAccepted,
			wantErr:   domainerrors.ErrNotOrderParty,
		},
		{
			name:      "customer cannot accept own order",
			principal: &entity.Principal{AccountID: customerID, Role: entity.RoleCustomer},
			order:     &entity.Order{ID: 1, SellerID: sellerID, CustomerID: customerID, Status: entity.OrderPending},
			next:      entity.OrderAccepted,
			wantErr:   domainerrors.ErrRoleNotAllowed,
		},
		{
			name:      "seller cannot advance fulfilment",
			principal: &entity.Principal{AccountID: sellerID, Role: entity.RoleSeller, Approval: entity.ApprovalApproved},
			order:     &entity.Order{ID: 1, SellerID: sellerID, CustomerID: customerID, Status: entity.OrderAccepted},
			next:      entity.OrderPreparing,
			wantErr:   domainerrors.ErrRoleNotAllowed,
		},
		{
			name:      "courier of another order",
			principal: &entity.Principal{AccountID: uuid.New(), Role: entity.RoleDelivery, Approval: entity.ApprovalApproved},
			order:     &entity.Order{ID: 1, SellerID: sellerID, CustomerID: customerID, CourierID: &courierID, Status: entity.OrderPreparing},
			next:      entity.OrderOutForDelivery,
			wantErr:   domainerrors.ErrOrderAssigned,
		},
		{
			name:      "pending courier",
			principal: &entity.Principal{AccountID: courierID, Role: entity.RoleDelivery, Approval: entity.ApprovalPending},
			order:     &entity.Order{ID: 1, SellerID: sellerID, CustomerID: customerID, Status: entity.OrderAccepted},
			next:      entity.OrderPreparing,
			wantErr:   domainerrors.ErrDeliveryNotApproved,
		},
		{
			name:      "courier cannot cancel",
			principal: &entity.Principal{AccountID: courierID, Role: entity.RoleDelivery, Approval: entity.ApprovalApproved},
			order:     &entity.Order{ID: 1, SellerID: sellerID, CustomerID: customerID, CourierID: &courierID, Status: entity.OrderPreparing},
			next:      entity.OrderCancelled,
			wantErr:   domainerrors.ErrRoleNotAllowed,
		},
		{
			name:      "admin cannot accept for the seller",
			principal: &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin},
			order:     &entity.Order{ID: 1, SellerID: sellerID, CustomerID: customerID, Status: entity.OrderPending},
			next:      entity.OrderAccepted,
			wantErr:   domainerrors.ErrRoleNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			fx.orderRepo.EXPECT().FindOrderByID(ctx, tt.order.ID).Return(tt.order, nil)

			_, err := fx.service.TransitionStatus(ctx, tt.principal, tt.order.ID, tt.next)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 403, appErr.HTTPCode())
		})
	}
}

func TestOrderService_TransitionStatus_FirstCourierIsAssigned(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	courier := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleDelivery, Approval: entity.ApprovalApproved}
	order := &entity.Order{ID: 8, SellerID: uuid.New(), CustomerID: uuid.New(), Status: entity.OrderAccepted}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(8)).Return(order, nil)
	fx.expectTx(t)
	fx.txOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, mock.MatchedBy(func(c entity.OrderStatusChange) bool {
			return c.AssignToID != nil && *c.AssignToID == courier.AccountID
		})).
		Return(nil)
	fx.txOrderRepo.EXPECT().CreateStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusHistory")).Return(nil)
	fx.expectAnnounce(t, entity.OrderPreparing)

	updated, err := fx.service.TransitionStatus(ctx, courier, 8, entity.OrderPreparing)
	require.NoError(t, err)
	require.NotNil(t, updated.CourierID)
	assert.Equal(t, courier.AccountID, *updated.CourierID)
	assert.Len(t, updated.Parties(), 3)
}

func TestOrderService_TransitionStatus_CustomerCancels(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customer := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleCustomer}
	order := &entity.Order{ID: 9, SellerID: uuid.New(), CustomerID: customer.AccountID, Status: entity.OrderAccepted}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(9)).Return(order, nil)
	fx.expectTx(t)
	fx.txOrderRepo.EXPECT().UpdateOrderStatus(ctx, mock.AnythingOfType("entity.OrderStatusChange")).Return(nil)
	fx.txOrderRepo.EXPECT().CreateStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusHistory")).Return(nil)
	fx.expectAnnounce(t, entity.OrderCancelled)

	updated, err := fx.service.TransitionStatus(ctx, customer, 9, entity.OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, updated.Status)
}

func TestOrderService_TransitionStatus_RejectionReleasesStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	seller := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalApproved}
	order := &entity.Order{ID: 11, SellerID: seller.AccountID, CustomerID: uuid.New(), Status: entity.OrderPending,
		Items: []entity.OrderItem{{ProductID: 1, Quantity: 2}, {ProductID: 5, Quantity: 1}}}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(11)).Return(order, nil)
	fx.expectTx(t)
	fx.txOrderRepo.EXPECT().UpdateOrderStatus(ctx, mock.AnythingOfType("entity.OrderStatusChange")).Return(nil)
	fx.txProductRepo.EXPECT().ReleaseStock(ctx, int64(1), 2).Return(nil)
	fx.txProductRepo.EXPECT().ReleaseStock(ctx, int64(5), 1).Return(nil)
	fx.txOrderRepo.EXPECT().CreateStatusHistory(ctx, mock.AnythingOfType("*entity.OrderStatusHistory")).Return(nil)
	fx.expectAnnounce(t, entity.OrderRejected)

	updated, err := fx.service.TransitionStatus(ctx, seller, 11, entity.OrderRejected)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderRejected, updated.Status)
}

func TestOrderService_TransitionStatus_LostRace(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	seller := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleSeller, Approval: entity.ApprovalApproved}
	order := &entity.Order{ID: 3, SellerID: seller.AccountID, Status: entity.OrderPending}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(3)).Return(order, nil)
	fx.expectTx(t)
	fx.txOrderRepo.EXPECT().UpdateOrderStatus(ctx, mock.Anything).Return(repository.ErrOrderStatusConflict)

	_, err := fx.service.TransitionStatus(ctx, seller, 3, entity.OrderRejected)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderStatusConflict))
	assert.Equal(t, entity.OrderPending, order.Status)
}

func TestOrderService_TransitionStatus_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	admin := &entity.Principal{AccountID: uuid.New(), Role: entity.RoleAdmin}
	order := &entity.Order{ID: 5, SellerID: uuid.New(), CustomerID: uuid.New(), Status: entity.OrderOutForDelivery}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(5)).Return(order, nil)
	fx.expectTx(t)
	fx.txOrderRepo.EXPECT().UpdateOrderStatus(ctx, mock.Anything).Return(nil)
	fx.txOrderRepo.EXPECT().CreateStatusHistory(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderStatusChanged(ctx, mock.Anything).Return(errors.New("broker unavailable"))
	fx.broadcaster.EXPECT().BroadcastOrderEvent(mock.Anything).Return()

	updated, err := fx.service.TransitionStatus(ctx, admin, 5, entity.OrderDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderDelivered, updated.Status)
	assert.True(t, updated.Status.IsTerminal())
}

func TestOrderService_Checkout_GroupsBySeller(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()
	sellerA, sellerB := uuid.New(), uuid.New()

	cart := &entity.Cart{OwnerID: customerID, Lines: []entity.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 1},
		{ProductID: 3, Quantity: 3},
	}}
	products := []*entity.Product{
		{ID: 1, SellerID: sellerA, Name: "Bread", Price: decimal.RequireFromString("2.50"), Stock: 2, IsActive: true},
		{ID: 2, SellerID: sellerB, Name: "Milk", Price: decimal.RequireFromString("1.20"), Stock: 10, IsActive: true},
		{ID: 3, SellerID: sellerA, Name: "Jam", Price: decimal.RequireFromString("4"), Stock: 3, IsActive: true},
	}

	fx.cartRepo.EXPECT().GetCart(ctx, customerID).Return(cart, nil)
	fx.expectTx(t)
	fx.txProductRepo.EXPECT().FindProductsByIDs(ctx, []int64{1, 2, 3}).Return(products, nil)
	fx.txProductRepo.EXPECT().ReserveStock(ctx, int64(1), 2).Return(nil)
	fx.txProductRepo.EXPECT().ReserveStock(ctx, int64(2), 1).Return(nil)
	fx.txProductRepo.EXPECT().ReserveStock(ctx, int64(3), 3).Return(nil)
	fx.txOrderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Times(2)
	fx.cartRepo.EXPECT().Clear(ctx, customerID).Return(nil)

	orders, err := fx.service.Checkout(ctx, customerID, &usecase.CheckoutInput{DeliveryAddress: "5 Elm St"})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, sellerA, orders[0].SellerID)
	assert.Len(t, orders[0].Items, 2)
	assert.True(t, orders[0].Total.Equal(decimal.RequireFromString("17")))
	assert.Equal(t, sellerB, orders[1].SellerID)
	assert.True(t, orders[1].Total.Equal(decimal.RequireFromString("1.2")))
	for _, order := range orders {
		assert.Equal(t, entity.OrderPending, order.Status)
		assert.Equal(t, "5 Elm St", order.DeliveryAddress)
	}
}

func TestOrderService_Checkout_ClearFailureKeepsOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.cartRepo.EXPECT().GetCart(ctx, customerID).
		Return(&entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 1}}}, nil)
	fx.expectTx(t)
	fx.txProductRepo.EXPECT().FindProductsByIDs(ctx, []int64{1}).
		Return([]*entity.Product{{ID: 1, SellerID: uuid.New(), Price: decimal.NewFromInt(3), Stock: 1, IsActive: true}}, nil)
	fx.txProductRepo.EXPECT().ReserveStock(ctx, int64(1), 1).Return(nil)
	fx.txOrderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, customerID).Return(errors.New("cart store unavailable"))

	orders, err := fx.service.Checkout(ctx, customerID, &usecase.CheckoutInput{DeliveryAddress: "here"})
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_Checkout_Rejections(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		customerID := uuid.New()
		fx.cartRepo.EXPECT().GetCart(ctx, customerID).Return(&entity.Cart{OwnerID: customerID}, nil)

		_, err := fx.service.Checkout(ctx, customerID, &usecase.CheckoutInput{DeliveryAddress: "here"})
		assert.True(t, errors.Is(err, domainerrors.ErrCartEmpty))
	})

	t.Run("inactive product", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		customerID := uuid.New()

		fx.cartRepo.EXPECT().GetCart(ctx, customerID).
			Return(&entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 1}}}, nil)
		fx.expectTx(t)
		fx.txProductRepo.EXPECT().FindProductsByIDs(ctx, []int64{1}).
			Return([]*entity.Product{{ID: 1, IsActive: false}}, nil)

		_, err := fx.service.Checkout(ctx, customerID, &usecase.CheckoutInput{DeliveryAddress: "here"})
		assert.True(t, errors.Is(err, domainerrors.ErrProductUnavailable))
	})

	t.Run("quantity above stock across lines", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		customerID := uuid.New()

		fx.cartRepo.EXPECT().GetCart(ctx, customerID).
			Return(&entity.Cart{Lines: []entity.CartLine{{ProductID: 1, Quantity: 2}, {ProductID: 1, Quantity: 2}}}, nil)
		fx.expectTx(t)
		fx.txProductRepo.EXPECT().FindProductsByIDs(ctx, []int64{1, 1}).
			Return([]*entity.Product{{ID: 1, SellerID: uuid.New(), Price: decimal.NewFromInt(1), Stock: 3, IsActive: true}}, nil)

		_, err := fx.service.Checkout(ctx, customerID, &usecase.CheckoutInput{DeliveryAddress: "here"})
		assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 409, appErr.HTTPCode())
	})

	t.Run("stock taken by a concurrent checkout", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		customerID := uuid.New()

		fx.cartRepo.EXPECT().GetCart(ctx, customerID).
			Return(&entity.Cart{Lines: []entity.CartLine{{ProductID: 4, Quantity: 1}}}, nil)
		fx.expectTx(t)
		fx.txProductRepo.EXPECT().FindProductsByIDs(ctx, []int64{4}).
			Return([]*entity.Product{{ID: 4, SellerID: uuid.New(), Price: decimal.NewFromInt(1), Stock: 1, IsActive: true}}, nil)
		fx.txProductRepo.EXPECT().ReserveStock(ctx, int64(4), 1).Return(repository.ErrInsufficientStock)

		_, err := fx.service.Checkout(ctx, customerID, &usecase.CheckoutInput{DeliveryAddress: "here"})
		assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
	})

	t.Run("missing address", func(t *testing.T) {
		fx := createTestOrderService(t)

		_, err := fx.service.Checkout(context.Background(), uuid.New(), &usecase.CheckoutInput{})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestOrderService_GetOrder_HiddenFromNonParties(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	order := &entity.Order{ID: 7, SellerID: uuid.New(), CustomerID: uuid.New(), Status: entity.OrderPending}

	fx.orderRepo.EXPECT().FindOrderByID(ctx, int64(7)).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, &entity.Principal{AccountID: uuid.New(), Role: entity.RoleCustomer}, 7)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListAvailableOrders_NearestFirst(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	near, far, unknown := uuid.New(), uuid.New(), uuid.New()
	nearLat, nearLng := 25.034, 121.565
	farLat, farLng := 25.105, 121.597

	orders := []*entity.Order{
		{ID: 1, SellerID: unknown, Status: entity.OrderAccepted},
		{ID: 2, SellerID: far, Status: entity.OrderAccepted},
		{ID: 3, SellerID: near, Status: entity.OrderPreparing},
	}

	fx.orderRepo.EXPECT().
		ListOrders(ctx, repository.OrderFilter{Statuses: []entity.OrderStatus{entity.OrderAccepted, entity.OrderPreparing}, UnassignedOnly: true}).
		Return(orders, nil)
	fx.profileRepo.EXPECT().FindSellerProfile(ctx, unknown).Return(nil, repository.ErrSellerProfileNotFound)
	fx.profileRepo.EXPECT().FindSellerProfile(ctx, far).
		Return(&entity.SellerProfile{BusinessName: "Far", Latitude: &farLat, Longitude: &farLng}, nil)
	fx.profileRepo.EXPECT().FindSellerProfile(ctx, near).
		Return(&entity.SellerProfile{BusinessName: "Near", Latitude: &nearLat, Longitude: &nearLng}, nil)

	available, err := fx.service.ListAvailableOrders(ctx, &usecase.Location{Lat: 25.033, Lng: 121.564})
	require.NoError(t, err)
	require.Len(t, available, 3)

	assert.Equal(t, int64(3), available[0].ID)
	assert.Equal(t, "Near", available[0].SellerName)
	assert.Less(t, *available[0].DistanceKm, 1.0)
	assert.Equal(t, int64(2), available[1].ID)
	assert.Greater(t, *available[1].DistanceKm, 5.0)
	assert.Equal(t, int64(1), available[2].ID)
	assert.Nil(t, available[2].DistanceKm)
}
