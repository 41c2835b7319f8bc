package di

import (
	"go.uber.org/fx"

	"github.com/apextheme/apexstore/internal/adapter/blobstore"
	"github.com/apextheme/apexstore/internal/adapter/mail"
	"github.com/apextheme/apexstore/internal/app"
	"github.com/apextheme/apexstore/internal/config"
	"github.com/apextheme/apexstore/internal/logger"
	"github.com/apextheme/apexstore/internal/pkg/auth"
	"github.com/apextheme/apexstore/internal/server/http/handlers"
	"github.com/apextheme/apexstore/internal/server/http/middleware"
	"github.com/apextheme/apexstore/internal/server/http/router"
	"github.com/apextheme/apexstore/internal/storage/postgres"
	"github.com/apextheme/apexstore/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		blobstore.Module,
		mail.Module,
		usecase.Module,
		fx.Provide(
			func(c blobstore.Client) usecase.ScreenshotStore { return c },
			func(c blobstore.Client) usecase.ArchiveStore { return c },
			func(n *mail.Notifier) usecase.DownloadNotifier { return n },
			func(f *app.StoreFacade) handlers.StoreFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
			func(v *auth.AdminVerifier) middleware.SecretVerifier { return v },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
