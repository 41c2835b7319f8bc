package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/domain/repository"
	"github.com/apextheme/apexstore/internal/metrics"
	"github.com/apextheme/apexstore/internal/watermark"
)

// Review action selectors.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// downloadLinkTTL is how long an issued download link stays valid.
const downloadLinkTTL = 48 * time.Hour

// ArchiveStore fetches the original theme archive and stores personalized copies.
type ArchiveStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
	Fetch(ctx context.Context, fileURL string) ([]byte, error)
}

// DownloadNotifier delivers the download link to the customer.
type DownloadNotifier interface {
	SendDownloadLink(ctx context.Context, to, customerName, downloadURL string, expiresAt time.Time) error
}

// ReviewResult reports the outcome of an admin review.
type ReviewResult struct {
	Status      model.OrderStatus
	DownloadURL string
}

// ReviewUseCase executes the admin approve/reject decision.
//
// Approval persists the state transition as the required phase; watermarking
// and email delivery are best-effort and never fail the approval.
type ReviewUseCase struct {
	orders           repository.OrderRepository
	archives         ArchiveStore
	notifier         DownloadNotifier
	originalThemeURL string
	publicBaseURL    string
	logger           *slog.Logger
	now              func() time.Time
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(orders repository.OrderRepository, archives ArchiveStore, notifier DownloadNotifier, originalThemeURL, publicBaseURL string, logger *slog.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		orders:           orders,
		archives:         archives,
		notifier:         notifier,
		originalThemeURL: originalThemeURL,
		publicBaseURL:    strings.TrimRight(publicBaseURL, "/"),
		logger:           logger,
		now:              time.Now,
	}
}

// Review applies the given action to a pending order.
func (u *ReviewUseCase) Review(ctx context.Context, orderID, action string) (*ReviewResult, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch action {
	case ActionReject:
		if err := u.orders.MarkRejected(ctx, order.ID); err != nil {
			return nil, err
		}
		metrics.OrdersRejectedTotal.Inc()
		u.logger.Info("order rejected", slog.String("order_id", order.ID))
		return &ReviewResult{Status: model.OrderStatusRejected}, nil
	case ActionApprove:
		return u.approve(ctx, order)
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidAction, action)
	}
}

func (u *ReviewUseCase) approve(ctx context.Context, order *model.Order) (*ReviewResult, error) {
	now := u.now()
	approval := model.Approval{
		Token:      uuid.NewString(),
		ExpiresAt:  now.Add(downloadLinkTTL),
		ApprovedAt: now,
	}
	approval.FileURL = u.personalize(ctx, order, now)

	if err := u.orders.MarkApproved(ctx, order.ID, approval); err != nil {
		return nil, err
	}
	metrics.OrdersApprovedTotal.Inc()

	downloadURL := fmt.Sprintf("%s/api/download?token=%s", u.publicBaseURL, approval.Token)

	if err := u.notifier.SendDownloadLink(ctx, order.Email, order.Name, downloadURL, approval.ExpiresAt); err != nil {
		metrics.DownloadEmailsFailedTotal.Inc()
		u.logger.Error("download email not sent",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	u.logger.Info("order approved", slog.String("order_id", order.ID))
	return &ReviewResult{Status: model.OrderStatusApproved, DownloadURL: downloadURL}, nil
}

// personalize produces the watermarked copy of the archive. Any failure falls
// back to distributing the unmodified original.
func (u *ReviewUseCase) personalize(ctx context.Context, order *model.Order, now time.Time) string {
	if u.originalThemeURL == "" {
		return ""
	}

	archive, err := u.archives.Fetch(ctx, u.originalThemeURL)
	if err != nil {
		return u.fallback(order.ID, "fetch original archive", err)
	}

	license := watermark.License{
		Name:        order.Name,
		Email:       order.Email,
		Phone:       order.Phone,
		OrderID:     order.ID,
		PurchasedAt: now,
	}
	if order.BusinessName != nil {
		license.BusinessName = *order.BusinessName
	}

	licensed, err := watermark.Apply(archive, license)
	if err != nil {
		return u.fallback(order.ID, "watermark archive", err)
	}

	artifactPath := fmt.Sprintf("downloads/%s-apex-theme.zip", order.ID)
	fileURL, err := u.archives.Upload(ctx, artifactPath, "application/zip", licensed)
	if err != nil {
		return u.fallback(order.ID, "upload watermarked archive", err)
	}
	return fileURL
}

func (u *ReviewUseCase) fallback(orderID, step string, err error) string {
	metrics.WatermarkFallbacksTotal.Inc()
	u.logger.Warn("falling back to original archive",
		slog.String("order_id", orderID),
		slog.String("step", step),
		slog.String("error", err.Error()),
	)
	return u.originalThemeURL
}
