package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type CartItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type AbandonedCartResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customer_name,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	Email        string             `json:"email,omitempty"`
	Items        []CartItemResponse `json:"items"`
	Total        float64            `json:"total"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromAbandonedCart(c entities.AbandonedCart) AbandonedCartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	return AbandonedCartResponse{
		ID:           c.ID,
		CustomerName: c.CustomerName,
		Phone:        c.Phone,
		Email:        c.Email,
		Items:        items,
		Total:        c.Total,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromAbandonedCarts(carts []entities.AbandonedCart) []AbandonedCartResponse {
	out := make([]AbandonedCartResponse, 0, len(carts))
	for _, c := range carts {
		out = append(out, FromAbandonedCart(c))
	}
	return out
}

type AbandonedCartStatsResponse struct {
	TotalCarts     int     `json:"total_carts"`
	ActiveCarts    int     `json:"active_carts"`
	RecoveredCarts int     `json:"recovered_carts"`
	TotalValue     float64 `json:"total_value"`
	RecoveredValue float64 `json:"recovered_value"`
	RecoveryRate   float64 `json:"recovery_rate"`
}

func FromAbandonedCartStats(s entities.AbandonedCartStats) AbandonedCartStatsResponse {
	return AbandonedCartStatsResponse{
		TotalCarts:     s.TotalCarts,
		ActiveCarts:    s.ActiveCarts,
		RecoveredCarts: s.RecoveredCarts,
		TotalValue:     s.TotalValue,
		RecoveredValue: s.RecoveredValue,
		RecoveryRate:   s.RecoveryRate,
	}
}

type RecentNotificationResponse struct {
	CartID      string `json:"cart_id"`
	WindowHours int    `json:"window_hours"`
	HasRecent   bool   `json:"has_recent"`
}
