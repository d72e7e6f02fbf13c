package request

import (
	"strings"

	"loja_xpto/internal/domain/entities"
)

type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

func (r ProductCreateRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Category:    strings.TrimSpace(r.Category),
	}
}
