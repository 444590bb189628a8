package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/handlers"
)

type RouterConfig struct {
	CustomerHandler *handlers.CustomerHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
	QueryHandler    *handlers.QueryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/customers", cfg.QueryHandler.ListCustomers)
		api.GET("/customers/by-email", cfg.CustomerHandler.GetByEmail)
		api.POST("/customers", cfg.CustomerHandler.Create)
		api.POST("/customers/bulk", cfg.CustomerHandler.BulkCreate)

		api.GET("/products", cfg.QueryHandler.ListProducts)
		api.POST("/products", cfg.ProductHandler.Create)
		api.POST("/products/restock-low", cfg.ProductHandler.RestockLow)

		api.GET("/orders", cfg.QueryHandler.ListOrders)
		api.POST("/orders", cfg.OrderHandler.Create)
		api.GET("/orders/:id/total", cfg.OrderHandler.RecomputeTotal)
	}

	return router
}
