package test

import (
	"context"

	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/usecase"
)

// StoreFacadeStub provides controllable behaviour for handler tests.
type StoreFacadeStub struct {
	IntakeFn func(context.Context, usecase.IntakeRequest) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	ReviewFn func(context.Context, string, string) (*usecase.ReviewResult, error)
	RedeemFn func(context.Context, string) (string, error)
}

// Intake delegates to the override or returns a default pending order.
func (s StoreFacadeStub) Intake(ctx context.Context, req usecase.IntakeRequest) (*model.Order, error) {
	if s.IntakeFn != nil {
		return s.IntakeFn(ctx, req)
	}
	return &model.Order{ID: "order-1", Status: model.OrderStatusPending}, nil
}

// Orders returns the configured listing.
func (s StoreFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "order-1"}}, nil
}

// Review delegates to the override or approves by default.
func (s StoreFacadeStub) Review(ctx context.Context, orderID, action string) (*usecase.ReviewResult, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, orderID, action)
	}
	return &usecase.ReviewResult{Status: model.OrderStatusApproved, DownloadURL: "http://example.test/api/download?token=t"}, nil
}

// RedeemDownload delegates to the override or returns a fixed artifact URL.
func (s StoreFacadeStub) RedeemDownload(ctx context.Context, token string) (string, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, token)
	}
	return "https://blob.test/downloads/order-1-apex-theme.zip", nil
}
