package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID       *uuid.UUID      `gorm:"type:uuid;index"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderStatusHistoryModel mirrors the 'order_status_history' table.
type OrderStatusHistoryModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    int64     `gorm:"not null;index"`
	FromStatus string    `gorm:"type:varchar(32);not null"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}
