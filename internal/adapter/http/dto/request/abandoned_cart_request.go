package request

import (
	"errors"
	"strings"

	"loja_xpto/internal/domain/entities"
)

var (
	ErrInvalidCartItems = errors.New("invalid cart items")
)

type CartItemRequest struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
}

// AbandonedCartUpsertRequest is the storefront payload for the cart upsert
// route. The phone keys the upsert; total is derived from the items when the
// caller leaves it out.
type AbandonedCartUpsertRequest struct {
	CustomerName string            `json:"customer_name"`
	Phone        string            `json:"phone" binding:"required"`
	Email        string            `json:"email"`
	Items        []CartItemRequest `json:"items"`
	Total        float64           `json:"total"`
}

func (r AbandonedCartUpsertRequest) ResolvePhone() string {
	return strings.TrimSpace(r.Phone)
}

// ResolveTotal sums the item lines, ignoring malformed entries, and falls
// back to the caller-provided total.
func (r AbandonedCartUpsertRequest) ResolveTotal() (float64, error) {
	totalFromItems := 0.0
	for _, it := range r.Items {
		if it.Price > 0 && it.Quantity > 0 {
			totalFromItems += it.Price * float64(it.Quantity)
		}
	}
	if totalFromItems > 0 {
		return totalFromItems, nil
	}
	if r.Total > 0 {
		return r.Total, nil
	}
	return 0, ErrInvalidCartItems
}

func (r AbandonedCartUpsertRequest) ToEntity() entities.AbandonedCart {
	items := make([]entities.AbandonedCartItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.AbandonedCartItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
		})
	}
	total, _ := r.ResolveTotal()
	return entities.AbandonedCart{
		CustomerName: strings.TrimSpace(r.CustomerName),
		Phone:        r.ResolvePhone(),
		Email:        strings.TrimSpace(r.Email),
		Items:        items,
		Total:        total,
	}
}
