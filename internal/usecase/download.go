package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/domain/repository"
	"github.com/apextheme/apexstore/internal/metrics"
)

// LimitReachedError signals the download quota is exhausted.
type LimitReachedError struct {
	Limit int
}

func (e LimitReachedError) Error() string {
	return fmt.Sprintf("download limit of %d reached", e.Limit)
}

// DownloadUseCase redeems download tokens against issued links.
type DownloadUseCase struct {
	orders           repository.OrderRepository
	originalThemeURL string
	now              func() time.Time
}

// NewDownloadUseCase constructs DownloadUseCase.
func NewDownloadUseCase(orders repository.OrderRepository, originalThemeURL string) *DownloadUseCase {
	return &DownloadUseCase{orders: orders, originalThemeURL: originalThemeURL, now: time.Now}
}

// Redeem resolves the token to an artifact URL, enforcing expiry before the
// download quota. A successful redemption increments the counter by one.
//
// The limit check reads a snapshot of the counter; concurrent redemptions at
// the boundary can overshoot the quota. That matches the stored-row contract,
// which has no locking.
func (u *DownloadUseCase) Redeem(ctx context.Context, token string) (string, error) {
	order, err := u.orders.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}

	if order.DownloadExpiresAt != nil && order.DownloadExpiresAt.Before(u.now()) {
		return "", domainErrors.ErrLinkExpired
	}

	if order.DownloadCount >= order.MaxDownloads {
		return "", LimitReachedError{Limit: order.MaxDownloads}
	}

	if err := u.orders.RegisterDownload(ctx, order.ID); err != nil {
		return "", err
	}
	metrics.OrderDownloadsTotal.Inc()

	if order.WatermarkedFileURL != nil && *order.WatermarkedFileURL != "" {
		return *order.WatermarkedFileURL, nil
	}
	if u.originalThemeURL != "" {
		return u.originalThemeURL, nil
	}
	return "", domainErrors.ErrFileMissing
}
