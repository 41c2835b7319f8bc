package mail

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/apextheme/apexstore/internal/config"
)

// Module exposes the email client and notifier to fx graph.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(NewNotifier),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return NewClient(p.Config.MailAPIURL, p.Config.MailAPIKey, p.Logger)
}
