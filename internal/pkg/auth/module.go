package auth

import (
	"go.uber.org/fx"

	"github.com/apextheme/apexstore/internal/config"
)

// Module provides admin credential verification via fx.
var Module = fx.Provide(newAdminVerifier)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newAdminVerifier(p verifierParams) *AdminVerifier {
	return NewAdminVerifier(p.Config.AdminSecret)
}
