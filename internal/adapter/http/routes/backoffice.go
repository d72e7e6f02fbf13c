package routes

import (
	"loja_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGuests         = "/guests"
	PathAbandonedCarts = "/abandoned-carts"
)

func addBackofficeRoutes(rg *gin.RouterGroup, guestHandler *handlers.GuestCustomerHandler, cartHandler *handlers.AbandonedCartHandler) {
	guests := rg.Group(PathGuests)
	{
		guests.GET("", guestHandler.ListGuestCustomers)
		guests.GET("/stats", guestHandler.GetGuestStats)
		guests.GET("/contact-stats", guestHandler.GetContactStats)
	}

	carts := rg.Group(PathAbandonedCarts)
	{
		carts.GET("", cartHandler.ListAbandonedCarts)
		carts.GET("/stats", cartHandler.GetAbandonedCartStats)
		carts.PUT("", cartHandler.UpsertAbandonedCart)
		carts.POST("/:cart_id/reminders", cartHandler.SendReminder)
		carts.GET("/:cart_id/reminders", cartHandler.GetNotificationHistory)
		carts.GET("/:cart_id/reminders/recent", cartHandler.CheckRecentNotification)
	}
}
