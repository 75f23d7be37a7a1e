package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopnet/pkg/logger"
	"shopnet/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
// Партнерские эндпоинты доступны только аккаунтам типа shop
func SetupRoutes(
	basketHandler *BasketHandler,
	orderHandler *OrderHandler,
	catalogHandler *CatalogHandler,
	partnerHandler *PartnerHandler,
	contactHandler *ContactHandler,
	authMiddleware *AuthMiddleware,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware())

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "market-service",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Публичные эндпоинты каталога (без аутентификации)
	router.GET("/categories", catalogHandler.GetCategories)
	router.GET("/shops", catalogHandler.GetShops)
	router.GET("/products", catalogHandler.GetProducts)

	// Корзина - требует аутентификации
	basket := router.Group("/basket")
	basket.Use(authMiddleware.Authenticate())
	{
		basket.GET("", basketHandler.GetBasket)
		basket.POST("", basketHandler.AddItems)
		basket.PUT("", basketHandler.UpdateItems)
		basket.DELETE("", basketHandler.RemoveItems)
	}

	// Заказы пользователя
	orders := router.Group("/orders")
	orders.Use(authMiddleware.Authenticate())
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", orderHandler.Checkout)
	}

	// Адреса доставки
	contacts := router.Group("/user/contact")
	contacts.Use(authMiddleware.Authenticate())
	{
		contacts.GET("", contactHandler.ListContacts)
		contacts.POST("", contactHandler.CreateContact)
		contacts.PUT("", contactHandler.UpdateContact)
		contacts.DELETE("", contactHandler.DeleteContacts)
	}

	// Партнерские эндпоинты - только для аккаунтов типа shop
	partner := router.Group("/partner")
	partner.Use(authMiddleware.Authenticate())
	partner.Use(authMiddleware.RequireUserType("shop"))
	{
		partner.POST("/update", partnerHandler.ImportCatalog)
		partner.GET("/state", partnerHandler.GetState)
		partner.POST("/state", partnerHandler.SetState)
		partner.GET("/orders", partnerHandler.GetOrders)
	}

	return router
}
