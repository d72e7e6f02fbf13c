package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	request "loja_xpto/internal/adapter/http/dto/request"
	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

const defaultCooldownHours = 24

// AbandonedCartHandler serves the recovery dashboard and the reminder flow.

type AbandonedCartHandler struct {
	usecase usecase.IAbandonedCartUseCase
}

func NewAbandonedCartHandler(uc usecase.IAbandonedCartUseCase) *AbandonedCartHandler {
	return &AbandonedCartHandler{usecase: uc}
}

func (h *AbandonedCartHandler) ListAbandonedCarts(c *gin.Context) {
	carts, err := h.usecase.GetAbandonedCarts(c.Request.Context())
	if err != nil {
		log.Printf("[carts][handler] list failed err=%v", err)
		appErr := mapAbandonedCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAbandonedCarts(carts))
}

func (h *AbandonedCartHandler) GetAbandonedCartStats(c *gin.Context) {
	stats, err := h.usecase.GetAbandonedCartStats(c.Request.Context())
	if err != nil {
		log.Printf("[carts][handler] stats failed err=%v", err)
		appErr := mapAbandonedCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAbandonedCartStats(stats))
}

// UpsertAbandonedCart is the storefront-facing add-or-update route: one live
// cart per phone number.
func (h *AbandonedCartHandler) UpsertAbandonedCart(c *gin.Context) {
	var payload request.AbandonedCartUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	if payload.ResolvePhone() == "" {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}
	if _, err := payload.ResolveTotal(); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.AddOrUpdateCart(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[carts][handler] upsert failed err=%v", err)
		appErr := mapAbandonedCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAbandonedCart(cart))
}

// SendReminder dispatches a WhatsApp recovery message for the cart.
func (h *AbandonedCartHandler) SendReminder(c *gin.Context) {
	cartID := c.Param("cart_id")
	log.Printf("[carts][handler] reminder start cart_id=%s", cartID)

	notification, err := h.usecase.SendWhatsAppReminder(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[carts][handler] reminder failed cart_id=%s err=%v", cartID, err)
		appErr := mapAbandonedCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[carts][handler] reminder success cart_id=%s notification_id=%s", cartID, notification.ID)

	c.JSON(http.StatusOK, response.FromNotification(notification))
}

// CheckRecentNotification answers the advisory cooldown question the admin
// UI asks before offering the send button.
func (h *AbandonedCartHandler) CheckRecentNotification(c *gin.Context) {
	cartID := c.Param("cart_id")

	windowHours := defaultCooldownHours
	if raw := c.Query("window_hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		windowHours = parsed
	}

	hasRecent, err := h.usecase.HasRecentNotification(c.Request.Context(), cartID, time.Duration(windowHours)*time.Hour)
	if err != nil {
		log.Printf("[carts][handler] recent-check failed cart_id=%s err=%v", cartID, err)
		appErr := mapAbandonedCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RecentNotificationResponse{
		CartID:      cartID,
		WindowHours: windowHours,
		HasRecent:   hasRecent,
	})
}

func (h *AbandonedCartHandler) GetNotificationHistory(c *gin.Context) {
	cartID := c.Param("cart_id")

	history, err := h.usecase.GetNotificationHistory(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[carts][handler] history failed cart_id=%s err=%v", cartID, err)
		appErr := mapAbandonedCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(history))
}

func mapAbandonedCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrInvalidCartPhone), errors.Is(err, usecase.ErrInvalidCartTotal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Abandoned cart not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoContactInfo):
		return pkg.NewDomainErrorSimple("CART_NO_CONTACT", "Cart has no phone or email to notify", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrReminderSendFailed):
		return pkg.NewDomainError("REMINDER_SEND_FAILED", "Reminder could not be delivered", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Messaging gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
