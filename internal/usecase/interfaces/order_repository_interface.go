package interfaces

import (
	"context"
	"loja_xpto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The back-office must be able to:
//   - persist orders coming from the storefront
//   - load the full order set for the guest aggregation dashboards
//   - flip an order status when checkout approves a payment

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
