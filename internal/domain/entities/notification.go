package entities

import "time"

// NotificationStatus is the delivery outcome recorded for a reminder.

type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusFailed    NotificationStatus = "failed"
)

const NotificationChannelWhatsApp = "whatsapp"

// Notification is one reminder attempt persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cart_id-index): cart_id
//
// Records exist for history and cooldown display only; nothing retries off
// this table.
type Notification struct {
	ID                string             `json:"id"`
	CartID            string             `json:"cart_id"`
	Channel           string             `json:"channel"`
	Recipient         string             `json:"recipient"`
	Message           string             `json:"message"`
	Status            NotificationStatus `json:"status"`
	Error             string             `json:"error,omitempty"`
	ProviderMessageID string             `json:"provider_message_id,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}
