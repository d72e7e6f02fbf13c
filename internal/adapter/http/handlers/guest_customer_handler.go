package handlers

import (
	"log"
	"net/http"

	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// GuestCustomerHandler serves the guest aggregation dashboards.
//
// Every endpoint recomputes from the order set; a failed fetch answers with
// an error status instead of silently returning zeroed stats, so the admin
// UI can tell "no data" from "fetch failed".

type GuestCustomerHandler struct {
	usecase usecase.IGuestCustomerUseCase
}

func NewGuestCustomerHandler(uc usecase.IGuestCustomerUseCase) *GuestCustomerHandler {
	return &GuestCustomerHandler{usecase: uc}
}

// ListGuestCustomers returns every resolved guest identity with its counters.
func (h *GuestCustomerHandler) ListGuestCustomers(c *gin.Context) {
	customers, err := h.usecase.GetGuestCustomers(c.Request.Context())
	if err != nil {
		log.Printf("[guests][handler] list failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuestCustomers(customers))
}

func (h *GuestCustomerHandler) GetGuestStats(c *gin.Context) {
	stats, err := h.usecase.GetGuestCustomerStats(c.Request.Context())
	if err != nil {
		log.Printf("[guests][handler] stats failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuestStats(stats))
}

func (h *GuestCustomerHandler) GetContactStats(c *gin.Context) {
	stats, err := h.usecase.GetGuestContactStats(c.Request.Context())
	if err != nil {
		log.Printf("[guests][handler] contact-stats failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContactStats(stats))
}
