package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "PROCESSING" // Being packed
	OrderStatusShipped    OrderStatus = "SHIPPED"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "DELIVERED"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "CANCELLED"  // Cancelled before shipping
)

type Order struct {
	ID                 uint        `gorm:"primaryKey" json:"id"`
	UserID             string      `gorm:"not null;index" json:"user_id"`
	User               User        `gorm:"foreignKey:UserID" json:"-"`
	Items              []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CustomerName       string      `gorm:"not null" json:"customer_name"`
	CustomerEmail      string      `gorm:"not null" json:"customer_email"`
	CustomerPhone      string      `json:"customer_phone"`
	ShippingAddress    string      `json:"shipping_address"`
	ShippingCity       string      `json:"shipping_city"`
	ShippingPostalCode string      `json:"shipping_postal_code"`
	ShippingCountry    string      `json:"shipping_country"`
	TotalAmount        float64     `json:"total_amount"`
	Status             OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	PaymentMethod      string      `json:"payment_method"` // e.g. "card", "cod"
	CreatedAt          time.Time   `json:"created_at"`
}

// OrderItem snapshots the product and package at purchase time so later
// catalog edits do not rewrite order history.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	PackageID   string  `json:"package_id"`
	PackageName string  `json:"package_name"`
	UnitPrice   float64 `json:"unit_price"` // Effective price at purchase time
	Quantity    int     `json:"quantity"`
}
