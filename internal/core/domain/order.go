package domain

import (
	"encoding/json"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order is a customer order. Order handling beyond the schema is not part of
// this service yet; the type exists for the API surface and the provisioned
// schema.
type Order struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"user_id"`
	Status                OrderStatus     `json:"status"`
	TotalAmount           float64         `json:"total_amount"`
	Items                 json.RawMessage `json:"items"`
	DeliveryAddress       json.RawMessage `json:"delivery_address,omitempty"`
	SpecialInstructions   string          `json:"special_instructions,omitempty"`
	EstimatedDeliveryTime *time.Time      `json:"estimated_delivery_time,omitempty"`
	PaymentStatus         PaymentStatus   `json:"payment_status"`
	PaymentMethod         string          `json:"payment_method,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// OrderItem is a line item within an order.
type OrderItem struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	MenuItemID     string          `json:"menu_item_id"`
	Quantity       int             `json:"quantity"`
	Price          float64         `json:"price"`
	Customizations json.RawMessage `json:"customizations,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
