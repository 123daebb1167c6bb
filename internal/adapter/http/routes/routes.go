package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "asphaltworks/docs" // This will be auto-generated
	"asphaltworks/internal/adapter/http/handlers"
	repository2 "asphaltworks/internal/adapter/persistence/repository"
	"asphaltworks/internal/infrastructure/database"
	"asphaltworks/internal/infrastructure/payments"
	"asphaltworks/internal/usecase"
	"asphaltworks/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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
	mixRepo := repository2.NewAsphaltMixDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, mixRepo, paymentGateway)
	loadUseCase := usecase.NewLoadUseCase(orderRepo)
	completionUseCase := usecase.NewOrderCompletionUseCase(orderRepo, paymentGateway)
	mixUseCase := usecase.NewAsphaltMixUseCase(mixRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase, completionUseCase)
	loadHandler := handlers.NewLoadHandler(loadUseCase)
	mixHandler := handlers.NewAsphaltMixHandler(mixUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, orderHandler, loadHandler, mixHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

// corsConfig allows the storefront origin(s) from CORS_ALLOWED_ORIGINS
// (comma-separated), or any origin when unset.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Operator-ID")

	raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if raw == "" {
		cfg.AllowAllOrigins = true
		return cfg
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
