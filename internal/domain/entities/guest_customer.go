package entities

import "time"

// ContactType classifies which contact channels a resolved guest identity has.

type ContactType string

const (
	ContactTypeBoth      ContactType = "both"
	ContactTypePhoneOnly ContactType = "phone_only"
	ContactTypeEmailOnly ContactType = "email_only"
	ContactTypeNone      ContactType = "none"
)

// GuestCustomerStatus is the customer-level label derived from the order
// counters once aggregation is complete.
//
// "new" marks a customer with no orders in either the completed or the
// abandoned bucket. The name deliberately differs from the "pending" order
// status so the two vocabularies cannot be confused.

type GuestCustomerStatus string

const (
	GuestCustomerStatusCompleted GuestCustomerStatus = "completed"
	GuestCustomerStatusAbandoned GuestCustomerStatus = "abandoned"
	GuestCustomerStatusMixed     GuestCustomerStatus = "mixed"
	GuestCustomerStatusNew       GuestCustomerStatus = "new"
)

// GuestCustomer is a derived, in-memory aggregate over guest orders.
//
// It is rebuilt from the full order set on every read and never persisted;
// Key is stable per phone number (digits-only normalization) across orders.
type GuestCustomer struct {
	Key             string              `json:"key"`
	Name            string              `json:"name,omitempty"`
	Phone           string              `json:"phone,omitempty"`
	Email           string              `json:"email,omitempty"`
	ContactType     ContactType         `json:"contact_type"`
	TotalOrders     int                 `json:"total_orders"`
	CompletedOrders int                 `json:"completed_orders"`
	AbandonedCarts  int                 `json:"abandoned_carts"`
	PendingOrders   int                 `json:"pending_orders"`
	TotalSpent      float64             `json:"total_spent"`
	FirstOrder      time.Time           `json:"first_order"`
	LastOrder       time.Time           `json:"last_order"`
	Status          GuestCustomerStatus `json:"status"`
}

// GuestStats is the store-wide guest summary derived from the aggregate.
type GuestStats struct {
	TotalGuests       int     `json:"total_guests"`
	TotalOrders       int     `json:"total_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	AbandonedCarts    int     `json:"abandoned_carts"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	ConversionRate    float64 `json:"conversion_rate"`
}

// ContactTypeStat is one slice of the contact-method breakdown.
type ContactTypeStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ContactStats is the contact-method breakdown over all resolved guests.
type ContactStats struct {
	PhoneOnly ContactTypeStat `json:"phone_only"`
	EmailOnly ContactTypeStat `json:"email_only"`
	Both      ContactTypeStat `json:"both"`
	None      ContactTypeStat `json:"none"`
}
