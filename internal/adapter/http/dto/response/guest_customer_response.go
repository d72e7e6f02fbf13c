package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type GuestCustomerResponse struct {
	Key             string    `json:"key"`
	Name            string    `json:"name,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	ContactType     string    `json:"contact_type"`
	TotalOrders     int       `json:"total_orders"`
	CompletedOrders int       `json:"completed_orders"`
	AbandonedCarts  int       `json:"abandoned_carts"`
	PendingOrders   int       `json:"pending_orders"`
	TotalSpent      float64   `json:"total_spent"`
	FirstOrder      time.Time `json:"first_order"`
	LastOrder       time.Time `json:"last_order"`
	Status          string    `json:"status"`
}

func FromGuestCustomer(c entities.GuestCustomer) GuestCustomerResponse {
	return GuestCustomerResponse{
		Key:             c.Key,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		ContactType:     string(c.ContactType),
		TotalOrders:     c.TotalOrders,
		CompletedOrders: c.CompletedOrders,
		AbandonedCarts:  c.AbandonedCarts,
		PendingOrders:   c.PendingOrders,
		TotalSpent:      c.TotalSpent,
		FirstOrder:      c.FirstOrder,
		LastOrder:       c.LastOrder,
		Status:          string(c.Status),
	}
}

func FromGuestCustomers(customers []entities.GuestCustomer) []GuestCustomerResponse {
	out := make([]GuestCustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromGuestCustomer(c))
	}
	return out
}

type GuestStatsResponse struct {
	TotalGuests       int     `json:"total_guests"`
	TotalOrders       int     `json:"total_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	AbandonedCarts    int     `json:"abandoned_carts"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	ConversionRate    float64 `json:"conversion_rate"`
}

func FromGuestStats(s entities.GuestStats) GuestStatsResponse {
	return GuestStatsResponse{
		TotalGuests:       s.TotalGuests,
		TotalOrders:       s.TotalOrders,
		CompletedOrders:   s.CompletedOrders,
		AbandonedCarts:    s.AbandonedCarts,
		TotalRevenue:      s.TotalRevenue,
		AverageOrderValue: s.AverageOrderValue,
		ConversionRate:    s.ConversionRate,
	}
}

type ContactTypeStatResponse struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ContactStatsResponse struct {
	PhoneOnly ContactTypeStatResponse `json:"phone_only"`
	EmailOnly ContactTypeStatResponse `json:"email_only"`
	Both      ContactTypeStatResponse `json:"both"`
	None      ContactTypeStatResponse `json:"none"`
}

func FromContactStats(s entities.ContactStats) ContactStatsResponse {
	conv := func(c entities.ContactTypeStat) ContactTypeStatResponse {
		return ContactTypeStatResponse{Count: c.Count, Percentage: c.Percentage}
	}
	return ContactStatsResponse{
		PhoneOnly: conv(s.PhoneOnly),
		EmailOnly: conv(s.EmailOnly),
		Both:      conv(s.Both),
		None:      conv(s.None),
	}
}
