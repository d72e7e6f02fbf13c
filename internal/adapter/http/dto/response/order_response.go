package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type ShippingContactResponse struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

type OrderResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id,omitempty"`
	Guest     bool                    `json:"guest"`
	Status    string                  `json:"status"`
	Total     float64                 `json:"total"`
	Shipping  ShippingContactResponse `json:"shipping_address"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Guest:  o.IsGuest(),
		Status: string(o.Status),
		Total:  o.Total,
		Shipping: ShippingContactResponse{
			Name:    o.Shipping.Name,
			Phone:   o.Shipping.Phone,
			Email:   o.Shipping.Email,
			Address: o.Shipping.Address,
			City:    o.Shipping.City,
			State:   o.Shipping.State,
			ZipCode: o.Shipping.ZipCode,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
