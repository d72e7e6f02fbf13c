package interfaces

import (
	"context"
	"loja_xpto/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for Product.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	ListAll(ctx context.Context) ([]entities.Product, error)
}
