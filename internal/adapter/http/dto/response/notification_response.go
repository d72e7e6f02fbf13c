package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

type NotificationResponse struct {
	ID                string    `json:"id"`
	CartID            string    `json:"cart_id"`
	Channel           string    `json:"channel"`
	Recipient         string    `json:"recipient"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	Error             string    `json:"error,omitempty"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:                n.ID,
		CartID:            n.CartID,
		Channel:           n.Channel,
		Recipient:         n.Recipient,
		Message:           n.Message,
		Status:            string(n.Status),
		Error:             n.Error,
		ProviderMessageID: n.ProviderMessageID,
		CreatedAt:         n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}
