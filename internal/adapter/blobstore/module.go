package blobstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/apextheme/apexstore/internal/config"
)

// Module exposes the blob store client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.BlobStoreURL, p.Config.BlobStoreToken, p.Logger)
}
