package routes

import (
	"loja_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathProducts = "/products"
	PathCheckout = "/checkout"
)

func addStorefrontRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, productHandler *handlers.ProductHandler, checkoutHandler *handlers.CheckoutHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:product_id", productHandler.GetProduct)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:order_id/payments", checkoutHandler.CreatePaymentByOrderID)
		checkout.GET("/:order_id/payments", checkoutHandler.GetPaymentByOrderID)
	}
}
