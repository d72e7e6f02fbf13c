package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound         = errors.New("abandoned cart not found")
	ErrInvalidCartID        = errors.New("invalid cart id")
	ErrInvalidCartPhone     = errors.New("invalid cart phone")
	ErrInvalidCartTotal     = errors.New("invalid cart total")
	ErrNoContactInfo        = errors.New("cart has no contact info")
	ErrReminderSendFailed   = errors.New("reminder send failed")
	ErrGatewayNotConfigured = errors.New("message gateway not configured")
)

// IAbandonedCartUseCase exposes the recovery dashboard and reminder flow.
//
// The cooldown check is advisory: two admin sessions racing on the same cart
// can both send. Acceptable at this traffic; a conditional write on the
// notifications table would be needed for a hard guarantee.

type IAbandonedCartUseCase interface {
	GetAbandonedCarts(ctx context.Context) ([]entities.AbandonedCart, error)
	GetAbandonedCartStats(ctx context.Context) (entities.AbandonedCartStats, error)
	AddOrUpdateCart(ctx context.Context, cart entities.AbandonedCart) (entities.AbandonedCart, error)
	SendWhatsAppReminder(ctx context.Context, cartID string) (entities.Notification, error)
	HasRecentNotification(ctx context.Context, cartID string, window time.Duration) (bool, error)
	GetNotificationHistory(ctx context.Context, cartID string) ([]entities.Notification, error)
}

type AbandonedCartUseCase struct {
	cartRepo         interfaces.IAbandonedCartRepository
	notificationRepo interfaces.INotificationRepository
	gateway          interfaces.IMessageGateway
}

var _ IAbandonedCartUseCase = (*AbandonedCartUseCase)(nil)

func NewAbandonedCartUseCase(cartRepo interfaces.IAbandonedCartRepository, notificationRepo interfaces.INotificationRepository, gateway interfaces.IMessageGateway) *AbandonedCartUseCase {
	return &AbandonedCartUseCase{cartRepo: cartRepo, notificationRepo: notificationRepo, gateway: gateway}
}

func (u *AbandonedCartUseCase) GetAbandonedCarts(ctx context.Context) ([]entities.AbandonedCart, error) {
	return u.cartRepo.ListAll(ctx)
}

func (u *AbandonedCartUseCase) GetAbandonedCartStats(ctx context.Context) (entities.AbandonedCartStats, error) {
	carts, err := u.cartRepo.ListAll(ctx)
	if err != nil {
		return entities.AbandonedCartStats{}, err
	}
	return ReduceAbandonedCartStats(carts), nil
}

// ReduceAbandonedCartStats derives the dashboard counters from the cart set.
// Reminded carts still count as active: they remain recoverable.
func ReduceAbandonedCartStats(carts []entities.AbandonedCart) entities.AbandonedCartStats {
	stats := entities.AbandonedCartStats{TotalCarts: len(carts)}

	for _, c := range carts {
		stats.TotalValue += c.Total
		switch c.Status {
		case entities.AbandonedCartStatusActive, entities.AbandonedCartStatusReminded:
			stats.ActiveCarts++
		case entities.AbandonedCartStatusRecovered:
			stats.RecoveredCarts++
			stats.RecoveredValue += c.Total
		}
	}

	if stats.TotalCarts > 0 {
		stats.RecoveryRate = float64(stats.RecoveredCarts) / float64(stats.TotalCarts) * 100
	}
	return stats
}

// AddOrUpdateCart upserts the live cart for a phone number while a visitor
// is still shopping. The cart total is recomputed from the items when the
// caller did not provide one.
func (u *AbandonedCartUseCase) AddOrUpdateCart(ctx context.Context, cart entities.AbandonedCart) (entities.AbandonedCart, error) {
	cart.Phone = NormalizePhone(cart.Phone)
	if cart.Phone == "" {
		return entities.AbandonedCart{}, ErrInvalidCartPhone
	}
	cart.Email = strings.TrimSpace(cart.Email)
	cart.CustomerName = strings.TrimSpace(cart.CustomerName)

	if cart.Total == 0 {
		for _, it := range cart.Items {
			if it.Price > 0 && it.Quantity > 0 {
				cart.Total += it.Price * float64(it.Quantity)
			}
		}
	}
	if cart.Total < 0 {
		return entities.AbandonedCart{}, ErrInvalidCartTotal
	}

	if cart.ID == "" {
		cart.ID = uuid.NewString()
	}
	if cart.Status == "" {
		cart.Status = entities.AbandonedCartStatusActive
	}
	now := time.Now().UTC()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	return u.cartRepo.UpsertByPhone(ctx, cart)
}

// SendWhatsAppReminder composes and dispatches a recovery message for the
// cart, recording the attempt in both outcomes. The contact check happens
// before any network call; a gateway failure is persisted as a failed record
// and then surfaced to the caller. No automatic retry.
func (u *AbandonedCartUseCase) SendWhatsAppReminder(ctx context.Context, cartID string) (entities.Notification, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Notification{}, ErrInvalidCartID
	}
	if u.gateway == nil {
		return entities.Notification{}, ErrGatewayNotConfigured
	}

	cart, err := u.cartRepo.GetByID(ctx, cartID)
	if err != nil {
		return entities.Notification{}, err
	}
	if cart.ID == "" {
		return entities.Notification{}, ErrCartNotFound
	}
	if !cart.HasContact() {
		log.Printf("[reminder][usecase] cart has no contact info cart_id=%s", cartID)
		return entities.Notification{}, ErrNoContactInfo
	}

	recipient := cart.Phone
	if recipient == "" {
		recipient = cart.Email
	}

	n := entities.Notification{
		ID:        uuid.NewString(),
		CartID:    cart.ID,
		Channel:   entities.NotificationChannelWhatsApp,
		Recipient: recipient,
		Message:   composeReminderMessage(cart),
		CreatedAt: time.Now().UTC(),
	}

	providerID, sendErr := u.gateway.SendMessage(ctx, recipient, n.Message)
	if sendErr != nil {
		n.Status = entities.NotificationStatusFailed
		n.Error = sendErr.Error()
		if _, err := u.notificationRepo.Create(ctx, n); err != nil {
			log.Printf("[reminder][usecase] failed recording failed attempt cart_id=%s err=%v", cartID, err)
		}
		log.Printf("[reminder][usecase] send failed cart_id=%s recipient=%s err=%v", cartID, recipient, sendErr)
		return n, fmt.Errorf("%w: %v", ErrReminderSendFailed, sendErr)
	}

	n.Status = entities.NotificationStatusSent
	n.ProviderMessageID = providerID
	created, err := u.notificationRepo.Create(ctx, n)
	if err != nil {
		return entities.Notification{}, err
	}

	if _, err := u.cartRepo.UpdateStatusByID(ctx, cart.ID, entities.AbandonedCartStatusReminded); err != nil {
		// The reminder already went out; a stale cart status is tolerable.
		log.Printf("[reminder][usecase] failed marking cart reminded cart_id=%s err=%v", cartID, err)
	}

	log.Printf("[reminder][usecase] send success cart_id=%s notification_id=%s provider_message_id=%s", cartID, created.ID, providerID)
	return created, nil
}

// HasRecentNotification reports whether the cart already received a reminder
// inside the window. Failed attempts do not count as outreach.
func (u *AbandonedCartUseCase) HasRecentNotification(ctx context.Context, cartID string, window time.Duration) (bool, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return false, ErrInvalidCartID
	}

	history, err := u.notificationRepo.ListByCartID(ctx, cartID)
	if err != nil {
		return false, err
	}

	cutoff := time.Now().UTC().Add(-window)
	for _, n := range history {
		if n.Status == entities.NotificationStatusFailed {
			continue
		}
		if n.CreatedAt.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}

func (u *AbandonedCartUseCase) GetNotificationHistory(ctx context.Context, cartID string) ([]entities.Notification, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return nil, ErrInvalidCartID
	}
	return u.notificationRepo.ListByCartID(ctx, cartID)
}

func composeReminderMessage(cart entities.AbandonedCart) string {
	name := cart.CustomerName
	if name == "" {
		name = "cliente"
	}
	return fmt.Sprintf(
		"Olá %s! Você deixou itens no seu carrinho na Loja XPTO no valor de R$ %.2f. Finalize sua compra e garanta seus produtos!",
		name, cart.Total,
	)
}
