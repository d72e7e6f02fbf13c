package interfaces

import (
	"context"
	"loja_xpto/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByCartID(ctx context.Context, cartID string) ([]entities.Notification, error)
}
