package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/domain/repository"
	"github.com/apextheme/apexstore/internal/metrics"
)

// ScreenshotStore persists payment proof images and returns their public URL.
type ScreenshotStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}

// ScreenshotUpload is the payment proof image submitted at checkout.
type ScreenshotUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IntakeRequest carries the raw checkout submission.
type IntakeRequest struct {
	Name          string
	Email         string
	Phone         string
	BusinessName  string
	PaymentMethod string
	Screenshot    *ScreenshotUpload
}

// OrderUseCase covers order intake and admin listing.
type OrderUseCase struct {
	orders      repository.OrderRepository
	screenshots ScreenshotStore
	logger      *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, screenshots ScreenshotStore, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, screenshots: screenshots, logger: logger}
}

// Intake validates the submission, stores the payment screenshot, and creates
// a pending order. Nothing is written when validation fails.
func (u *OrderUseCase) Intake(ctx context.Context, req IntakeRequest) (*model.Order, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	businessName := strings.TrimSpace(req.BusinessName)

	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name", domainErrors.ErrMissingField)
	case email == "":
		return nil, fmt.Errorf("%w: email", domainErrors.ErrMissingField)
	case phone == "":
		return nil, fmt.Errorf("%w: phone", domainErrors.ErrMissingField)
	case req.PaymentMethod == "":
		return nil, fmt.Errorf("%w: paymentMethod", domainErrors.ErrMissingField)
	case req.Screenshot == nil || len(req.Screenshot.Data) == 0:
		return nil, fmt.Errorf("%w: screenshot", domainErrors.ErrMissingField)
	}

	if !ValidateEmail(email) {
		return nil, domainErrors.ErrInvalidEmail
	}

	method := model.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	screenshotPath := fmt.Sprintf("screenshots/%s-%s", uuid.NewString(), req.Screenshot.Filename)
	screenshotURL, err := u.screenshots.Upload(ctx, screenshotPath, req.Screenshot.ContentType, req.Screenshot.Data)
	if err != nil {
		return nil, fmt.Errorf("upload screenshot: %w", err)
	}

	order := &model.Order{
		ID:            uuid.NewString(),
		Email:         email,
		Name:          name,
		Phone:         phone,
		PaymentMethod: method,
		ScreenshotURL: screenshotURL,
		Status:        model.OrderStatusPending,
		DownloadCount: 0,
		MaxDownloads:  model.DefaultMaxDownloads,
	}
	if businessName != "" {
		order.BusinessName = &businessName
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	u.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("payment_method", string(method)),
	)
	return order, nil
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}
