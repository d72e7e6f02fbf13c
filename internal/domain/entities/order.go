package entities

import "time"

// OrderStatus represents the order lifecycle as the storefront records it.
//
// Domain notes:
//   - "pending" and "cancelled" orders count as abandoned carts for the
//     recovery dashboards; "processing" onwards counts as a completed sale.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ShippingContact is the contact block captured at checkout.
//
// Every field is optional: guests can check out with only a phone, only an
// email, or neither. Absence is an empty string, never an error.
type ShippingContact struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

// Order is the order entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// A guest order carries an empty UserID.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id,omitempty"`
	Status    OrderStatus     `json:"status"`
	Total     float64         `json:"total"`
	Shipping  ShippingContact `json:"shipping_address"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsGuest reports whether the order was placed without an authenticated account.
func (o Order) IsGuest() bool {
	return o.UserID == ""
}
