package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	PaymentStatusNotPaid = "Not Paid"
	DefaultOrderCurrency = "TZS"
)

// Order is written once at placement and never updated through the API.
// Item references and the total are persisted as given by the caller;
// there is no cross-check against the menu-item collections.
type Order struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"business_id"`
	StaffID       *uuid.UUID  `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	TableNumber   string      `gorm:"not null" json:"table_number"`
	OrderNote     string      `json:"order_note,omitempty"`
	OrderItems    []OrderItem `gorm:"foreignKey:OrderID" json:"order_items"`
	TotalPrice    Price       `gorm:"embedded;embeddedPrefix:total_" json:"total_price"`
	OrderStatus   string      `json:"order_status"`
	PaymentStatus string      `json:"payment_status"`
	Time          time.Time   `json:"time"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem references a menu item in one of the five catalog
// collections. ItemID is serialized as "id" to match the order payload
// shape; Category names the collection the item belongs to (e.g. "foods").
type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"-"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`
	Category   string    `gorm:"not null" json:"category"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderStatus == "" {
		o.OrderStatus = OrderStatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentStatusNotPaid
	}
	if o.TotalPrice.Currency == "" {
		o.TotalPrice.Currency = DefaultOrderCurrency
	}
	if o.Time.IsZero() {
		o.Time = time.Now()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
