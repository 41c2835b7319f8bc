package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/metrics"
	"github.com/apextheme/apexstore/internal/server/http/handlers"
	"github.com/apextheme/apexstore/internal/server/http/middleware"
)

// New configures the gin router with handlers and middleware.
func New(facade handlers.StoreFacade, verifier middleware.SecretVerifier, health handlers.HealthChecker, channels []model.PaymentChannel, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	downloadHandler := handlers.NewDownloadHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(channels)
	healthHandler := handlers.NewHealthHandler(health)

	metrics.Register()
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Create)
	api.GET("/download", downloadHandler.Redeem)
	api.GET("/payment-methods", paymentHandler.List)
	api.GET("/health", healthHandler.Check)

	admin := api.Group("")
	admin.Use(middleware.AdminRequired(verifier))
	admin.GET("/orders", orderHandler.List)
	admin.POST("/orders/approve", orderHandler.Review)

	return engine
}
