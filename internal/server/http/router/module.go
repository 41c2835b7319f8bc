package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/apextheme/apexstore/internal/config"
	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/server/http/handlers"
	"github.com/apextheme/apexstore/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(paymentChannels),
	fx.Provide(setup),
)

func paymentChannels(cfg *config.Config) []model.PaymentChannel {
	return model.PaymentChannels(cfg.VodafoneCashNumber, cfg.InstapayNumber, cfg.TeldaNumber)
}

type routerParams struct {
	fx.In

	Facade   handlers.StoreFacade
	Verifier middleware.SecretVerifier
	Health   handlers.HealthChecker
	Channels []model.PaymentChannel
	Logger   *slog.Logger
}

func setup(p routerParams) *gin.Engine {
	return New(p.Facade, p.Verifier, p.Health, p.Channels, p.Logger)
}
