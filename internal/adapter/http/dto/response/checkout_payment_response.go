package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type CheckoutPaymentResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromCheckoutPayment(p entities.CheckoutPayment) CheckoutPaymentResponse {
	return CheckoutPaymentResponse{
		ID:                 p.ID,
		OrderID:            p.OrderID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
