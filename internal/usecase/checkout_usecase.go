package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("checkout payment not found")
	ErrInvalidPaymentOrderID      = errors.New("invalid order_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrOrderNotPayable            = errors.New("order is not payable")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// ICheckoutUseCase encapsulates the "create and process payment" behavior for
// a storefront order.

type ICheckoutUseCase interface {
	CreateAndApprove(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.CheckoutPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.CheckoutPayment, error)
}

type CheckoutUseCase struct {
	repo      interfaces.ICheckoutPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(repo interfaces.ICheckoutPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *CheckoutUseCase) CreateAndApprove(ctx context.Context, orderID string, providerPayload json.RawMessage) (entities.CheckoutPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CheckoutPayment{}, ErrInvalidPaymentOrderID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return entities.CheckoutPayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.CheckoutPayment{}, errors.New("payment gateway not configured")
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.CheckoutPayment{}, err
	}
	if order.ID == "" {
		return entities.CheckoutPayment{}, ErrOrderNotFound
	}
	if order.Status != entities.OrderStatusPending {
		log.Printf("[checkout][usecase] order not payable order_id=%s status=%s", orderID, order.Status)
		return entities.CheckoutPayment{}, ErrOrderNotPayable
	}

	// The provider reconciles events through external_reference; the source
	// of truth for the amount is the order in DB, never the caller.
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = orderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Pedido %s", orderID)
		}
		reqMap["transaction_amount"] = order.Total
		if b, err := json.Marshal(reqMap); err == nil {
			providerPayload = b
		}
	}

	log.Printf("[checkout][usecase] calling payment gateway order_id=%s", orderID)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Printf("[checkout][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
		if isGatewayUnauthorized(err) {
			return entities.CheckoutPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.CheckoutPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.CheckoutPayment{}, err
	}
	log.Printf("[checkout][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[checkout][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	p := entities.CheckoutPayment{
		ID:                 providerPaymentID,
		OrderID:            orderID,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.CheckoutPayment{}, err
	}

	if _, err := u.orderRepo.UpdateStatusByID(ctx, orderID, entities.OrderStatusProcessing); err != nil {
		// Payment is persisted; the order status catches up on the next sync.
		log.Printf("[checkout][usecase] failed advancing order status order_id=%s err=%v", orderID, err)
	}

	return created, nil
}

func (u *CheckoutUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.CheckoutPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidPaymentOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
