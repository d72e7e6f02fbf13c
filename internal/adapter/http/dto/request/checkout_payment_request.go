package request

import "encoding/json"

// CheckoutPaymentCreateRequest is the payload for the checkout payment route.
//
// `provider_payload` is stored as-is (raw JSON) to support varying Mercado
// Pago schemas.

type CheckoutPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
