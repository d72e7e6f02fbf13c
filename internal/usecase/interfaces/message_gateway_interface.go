package interfaces

import "context"

// IMessageGateway abstracts external messaging providers (e.g. WhatsApp).
//
// The back-office uses it to push a single templated reminder; delivery
// history is persisted separately and nothing retries through this interface.
type IMessageGateway interface {
	SendMessage(ctx context.Context, recipient string, message string) (providerMessageID string, err error)
}
