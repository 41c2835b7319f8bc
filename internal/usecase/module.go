package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/apextheme/apexstore/internal/config"
	"github.com/apextheme/apexstore/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	newReviewUseCase,
	newDownloadUseCase,
)

type reviewParams struct {
	fx.In

	Orders   repository.OrderRepository
	Archives ArchiveStore
	Notifier DownloadNotifier
	Config   *config.Config
	Logger   *slog.Logger
}

func newReviewUseCase(p reviewParams) *ReviewUseCase {
	return NewReviewUseCase(p.Orders, p.Archives, p.Notifier, p.Config.OriginalThemeURL, p.Config.PublicBaseURL, p.Logger)
}

type downloadParams struct {
	fx.In

	Orders repository.OrderRepository
	Config *config.Config
}

func newDownloadUseCase(p downloadParams) *DownloadUseCase {
	return NewDownloadUseCase(p.Orders, p.Config.OriginalThemeURL)
}
