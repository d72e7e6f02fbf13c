package interfaces

import (
	"context"
	"loja_xpto/internal/domain/entities"
)

// IAbandonedCartRepository abstracts DynamoDB persistence for AbandonedCart.
//
// UpsertByPhone carries the add-or-update semantics the storefront needs while
// a visitor is still shopping: one live cart per phone number.

type IAbandonedCartRepository interface {
	GetByID(ctx context.Context, id string) (entities.AbandonedCart, error)
	GetByPhone(ctx context.Context, phone string) (entities.AbandonedCart, error)
	ListAll(ctx context.Context) ([]entities.AbandonedCart, error)
	UpsertByPhone(ctx context.Context, cart entities.AbandonedCart) (entities.AbandonedCart, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.AbandonedCartStatus) (entities.AbandonedCart, error)
}
