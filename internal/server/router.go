package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/avant-dev/usersvc/internal/handlers"
)

type RouterConfig struct {
	UserHandler    *handlers.UserHandler
	InvoiceHandler *handlers.InvoiceHandler
	CORSOrigins    []string
	TracingEnabled bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware("usersvc"))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/users", cfg.UserHandler.CreateUser)
		api.GET("/users/:id", cfg.UserHandler.GetUserDetails)
		api.POST("/users/:id/activate", cfg.UserHandler.ActivateUser)
		api.POST("/invoices", cfg.InvoiceHandler.ProcessInvoice)
	}

	return router
}
