package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending" // sole initial status
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusFailed     OrderStatus = "failed"
	OrderStatusInProgress OrderStatus = "in progress"
	OrderStatusInDelivery OrderStatus = "in delivery"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// KnownOrderStatuses is the full label set. There is no transition graph:
// any known status may be written at any time, last write wins.
var KnownOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusFailed,
	OrderStatusInProgress,
	OrderStatusInDelivery,
	OrderStatusDelivered,
}

// DeliveryDetails is free text; the only validation is non-empty fields.
type DeliveryDetails struct {
	FullName    string `json:"full_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// Order is an immutable snapshot of items, price and delivery details taken at
// creation time. Only Status is ever mutated afterwards. Orders are never
// deleted. An empty UserID marks a guest order.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderRef        string          `gorm:"uniqueIndex" json:"order_ref"`
	UserID          string          `gorm:"index" json:"user_id,omitempty"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice      float64         `json:"total_price"`
	DeliveryDetails DeliveryDetails `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery_details"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    uint    `gorm:"index" json:"-"`
	ProductID  uint    `json:"product_id"`
	EName      string  `json:"e_name"`
	ARName     string  `json:"ar_name"`
	ECategory  string  `json:"e_category"`
	ARCategory string  `json:"ar_category"`
	ImageURL   string  `json:"image_url"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}
