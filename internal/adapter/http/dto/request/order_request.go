package request

import (
	"strings"

	"loja_xpto/internal/domain/entities"
)

type ShippingContactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// OrderCreateRequest is the order intake payload. Status is optional and
// defaults to "pending"; an absent user_id marks a guest order.
type OrderCreateRequest struct {
	UserID   string                 `json:"user_id"`
	Status   string                 `json:"status"`
	Total    float64                `json:"total" binding:"required"`
	Shipping ShippingContactRequest `json:"shipping_address"`
}

func (r OrderCreateRequest) ToEntity() entities.Order {
	return entities.Order{
		UserID: strings.TrimSpace(r.UserID),
		Status: entities.OrderStatus(strings.TrimSpace(r.Status)),
		Total:  r.Total,
		Shipping: entities.ShippingContact{
			Name:    strings.TrimSpace(r.Shipping.Name),
			Phone:   strings.TrimSpace(r.Shipping.Phone),
			Email:   strings.TrimSpace(r.Shipping.Email),
			Address: strings.TrimSpace(r.Shipping.Address),
			City:    strings.TrimSpace(r.Shipping.City),
			State:   strings.TrimSpace(r.Shipping.State),
			ZipCode: strings.TrimSpace(r.Shipping.ZipCode),
		},
	}
}
