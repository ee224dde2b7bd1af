package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApprovalStatus_CanResolveTo(t *testing.T) {
	assert.True(t, ApprovalPending.CanResolveTo(ApprovalApproved))
	assert.True(t, ApprovalPending.CanResolveTo(ApprovalRejected))
	assert.False(t, ApprovalPending.CanResolveTo(ApprovalPending))
	assert.False(t, ApprovalApproved.CanResolveTo(ApprovalRejected))
	assert.False(t, ApprovalRejected.CanResolveTo(ApprovalApproved))
	assert.True(t, ApprovalRejected.CanReapply())
	assert.False(t, ApprovalPending.CanReapply())
}

func TestAccount_Approval(t *testing.T) {
	t.Run("customer has no approval gate", func(t *testing.T) {
		account := &Account{Role: RoleCustomer}
		assert.Equal(t, ApprovalStatus(""), account.Approval())
		assert.True(t, NewPrincipal(account).IsApproved())
	})

	t.Run("seller without profile is pending", func(t *testing.T) {
		account := &Account{Role: RoleSeller}
		assert.Equal(t, ApprovalPending, account.Approval())
		assert.False(t, NewPrincipal(account).IsApproved())
	})

	t.Run("approved courier", func(t *testing.T) {
		account := &Account{
			Role:            RoleDelivery,
			DeliveryProfile: &DeliveryProfile{Approval: ApprovalApproved},
		}
		assert.True(t, NewPrincipal(account).IsApproved())
	})
}

func TestOrder_TotalsAndParties(t *testing.T) {
	courier := uuid.New()
	order := &Order{
		CustomerID: uuid.New(),
		SellerID:   uuid.New(),
		Items: []OrderItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("3.50")},
			{Quantity: 1, UnitPrice: decimal.RequireFromString("10")},
		},
	}

	assert.True(t, order.CalculateTotal().Equal(decimal.RequireFromString("17")))
	assert.Len(t, order.Parties(), 2)
	assert.False(t, order.IsParty(courier))

	order.CourierID = &courier
	assert.True(t, order.IsParty(courier))
	assert.Len(t, order.Parties(), 3)
}

func TestOrder_PartiesAreDistinct(t *testing.T) {
	self := uuid.New()
	courier := uuid.New()
	order := &Order{CustomerID: self, SellerID: self}

	assert.Equal(t, []uuid.UUID{self}, order.Parties())

	order.CourierID = &courier
	assert.Equal(t, []uuid.UUID{self, courier}, order.Parties())

	order.CourierID = &self
	assert.Equal(t, []uuid.UUID{self}, order.Parties())
}

func TestOrderStatusChangedEvent_RecipientsAreDistinct(t *testing.T) {
	seller := uuid.New()
	customer := uuid.New()
	event := &OrderStatusChangedEvent{CustomerID: customer, SellerID: seller, CourierID: &seller}

	assert.Equal(t, []uuid.UUID{customer, seller}, event.Recipients())

	event.SellerID = customer
	event.CourierID = nil
	assert.Equal(t, []uuid.UUID{customer}, event.Recipients())
}

func TestProduct_Stock(t *testing.T) {
	product := &Product{IsActive: true, Stock: 3}
	assert.True(t, product.IsPurchasable())
	assert.True(t, product.HasStock(3))
	assert.False(t, product.HasStock(4))

	product.Stock = 0
	assert.False(t, product.IsPurchasable())

	product.Stock = 5
	product.IsActive = false
	assert.False(t, product.IsPurchasable())
}
