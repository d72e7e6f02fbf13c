package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidOrderTotal  = errors.New("invalid order total")
)

// IOrderUseCase exposes order intake and reads.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, guestOnly bool) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.Total < 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}
	if o.Status == "" {
		o.Status = entities.OrderStatusPending
	}
	if !isKnownOrderStatus(o.Status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	o.UserID = strings.TrimSpace(o.UserID)
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, guestOnly bool) ([]entities.Order, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if !guestOnly {
		return orders, nil
	}

	guests := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsGuest() {
			guests = append(guests, o)
		}
	}
	return guests, nil
}

func isKnownOrderStatus(s entities.OrderStatus) bool {
	switch s {
	case entities.OrderStatusPending, entities.OrderStatusProcessing, entities.OrderStatusShipped,
		entities.OrderStatusDelivered, entities.OrderStatusCancelled:
		return true
	}
	return false
}
