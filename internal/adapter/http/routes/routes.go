package routes

import (
	"log"
	_ "loja_xpto/docs" // This will be auto-generated
	"loja_xpto/internal/adapter/http/handlers"
	repository2 "loja_xpto/internal/adapter/persistence/repository"
	"loja_xpto/internal/infrastructure/database"
	"loja_xpto/internal/infrastructure/messaging"
	"loja_xpto/internal/infrastructure/payments"
	"loja_xpto/internal/usecase"
	"loja_xpto/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	cartRepo := repository2.NewAbandonedCartDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	paymentRepo := repository2.NewCheckoutPaymentDynamoRepository(ddb)

	guestUseCase := usecase.NewGuestCustomerUseCase(orderRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)

	var messageGateway interfaces.IMessageGateway
	waGateway, err := messaging.NewWhatsAppGateway(os.Getenv("WHATSAPP_API_URL"), os.Getenv("WHATSAPP_API_TOKEN"))
	if err != nil {
		log.Printf("WhatsApp gateway not configured: %v", err)
	} else {
		messageGateway = waGateway
	}

	cartUseCase := usecase.NewAbandonedCartUseCase(cartRepo, notificationRepo, messageGateway)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(paymentRepo, orderRepo, paymentGateway)

	guestHandler := handlers.NewGuestCustomerHandler(guestUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	cartHandler := handlers.NewAbandonedCartHandler(cartUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, orderHandler, productHandler, checkoutHandler)
	addBackofficeRoutes(v1, guestHandler, cartHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
