package handlers

import (
	"context"

	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/usecase"
)

// IntakeFacade covers customer-facing order submission.
type IntakeFacade interface {
	Intake(ctx context.Context, req usecase.IntakeRequest) (*model.Order, error)
}

// AdminFacade covers administrator listing and review.
type AdminFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Review(ctx context.Context, orderID, action string) (*usecase.ReviewResult, error)
}

// DownloadFacade redeems download tokens.
type DownloadFacade interface {
	RedeemDownload(ctx context.Context, token string) (string, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	IntakeFacade
	AdminFacade
	DownloadFacade
}

// HealthChecker verifies the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
