package entities

import "time"

// AbandonedCartStatus tracks the recovery lifecycle of a cart.

type AbandonedCartStatus string

const (
	AbandonedCartStatusActive    AbandonedCartStatus = "active"
	AbandonedCartStatusReminded  AbandonedCartStatus = "reminded"
	AbandonedCartStatusRecovered AbandonedCartStatus = "recovered"
	AbandonedCartStatusExpired   AbandonedCartStatus = "expired"
)

// AbandonedCartItem is a line item snapshotted when the cart was captured.
type AbandonedCartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// AbandonedCart is the cart entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (phone-index): phone
//
// The storefront upserts a cart per phone while the visitor shops; the
// back-office reads them for the recovery dashboard.
type AbandonedCart struct {
	ID           string              `json:"id"`
	CustomerName string              `json:"customer_name,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	Email        string              `json:"email,omitempty"`
	Items        []AbandonedCartItem `json:"items,omitempty"`
	Total        float64             `json:"total"`
	Status       AbandonedCartStatus `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// HasContact reports whether the cart can be reached on any channel.
func (c AbandonedCart) HasContact() bool {
	return c.Phone != "" || c.Email != ""
}

// AbandonedCartStats is the dashboard summary over all captured carts.
type AbandonedCartStats struct {
	TotalCarts     int     `json:"total_carts"`
	ActiveCarts    int     `json:"active_carts"`
	RecoveredCarts int     `json:"recovered_carts"`
	TotalValue     float64 `json:"total_value"`
	RecoveredValue float64 `json:"recovered_value"`
	RecoveryRate   float64 `json:"recovery_rate"`
}
