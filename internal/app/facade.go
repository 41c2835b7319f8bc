package app

import (
	"context"

	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/usecase"
)

// StoreFacade aggregates the order lifecycle operations exposed over HTTP.
type StoreFacade struct {
	orders    *usecase.OrderUseCase
	reviews   *usecase.ReviewUseCase
	downloads *usecase.DownloadUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(orders *usecase.OrderUseCase, reviews *usecase.ReviewUseCase, downloads *usecase.DownloadUseCase) *StoreFacade {
	return &StoreFacade{orders: orders, reviews: reviews, downloads: downloads}
}

func (f *StoreFacade) Intake(ctx context.Context, req usecase.IntakeRequest) (*model.Order, error) {
	return f.orders.Intake(ctx, req)
}

func (f *StoreFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *StoreFacade) Review(ctx context.Context, orderID, action string) (*usecase.ReviewResult, error) {
	return f.reviews.Review(ctx, orderID, action)
}

func (f *StoreFacade) RedeemDownload(ctx context.Context, token string) (string, error) {
	return f.downloads.Redeem(ctx, token)
}
