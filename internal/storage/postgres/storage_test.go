package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/domain/model"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_created ON orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_orders_status ON orders").WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
}

var orderColumnNames = []string{
	"id", "email", "name", "phone", "business_name", "payment_method", "screenshot_url",
	"status", "download_count", "max_downloads", "download_token", "download_expires_at",
	"watermarked_file_url", "created_at", "updated_at", "approved_at",
}

func orderRow(mock pgxmockv3.PgxPoolIface, order *model.Order) *pgxmockv3.Rows {
	return mock.NewRows(orderColumnNames).AddRow(
		order.ID, order.Email, order.Name, order.Phone, order.BusinessName,
		order.PaymentMethod, order.ScreenshotURL, order.Status,
		order.DownloadCount, order.MaxDownloads, order.DownloadToken,
		order.DownloadExpiresAt, order.WatermarkedFileURL,
		order.CreatedAt, order.UpdatedAt, order.ApprovedAt,
	)
}

func sampleOrder() *model.Order {
	return &model.Order{
		ID:            "order-1",
		Email:         "jordan@example.com",
		Name:          "Jordan Customer",
		Phone:         "01012345678",
		PaymentMethod: model.PaymentVodafoneCash,
		ScreenshotURL: "https://blob.test/screenshots/receipt.png",
		Status:        model.OrderStatusPending,
		MaxDownloads:  model.DefaultMaxDownloads,
		CreatedAt:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInitSchemaError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS orders").WillReturnError(errors.New("permission denied"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestCreateOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	order := sampleOrder()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(order.ID, order.Email, order.Name, order.Phone, order.BusinessName,
			order.PaymentMethod, order.ScreenshotURL, order.Status,
			order.DownloadCount, order.MaxDownloads).
		WillReturnRows(mock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	if err := storage.Orders().Create(context.Background(), order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !order.CreatedAt.Equal(now) || !order.UpdatedAt.Equal(now) {
		t.Errorf("expected timestamps backfilled, got %v / %v", order.CreatedAt, order.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrderError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO orders").WillReturnError(errors.New("connection reset"))

	if err := storage.Orders().Create(context.Background(), sampleOrder()); err == nil {
		t.Fatal("expected insert error")
	}
}

func TestGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	want := sampleOrder()
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs(want.ID).
		WillReturnRows(orderRow(mock, want))

	got, err := storage.Orders().GetByID(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != want.ID || got.Email != want.Email || got.Status != want.Status {
		t.Errorf("unexpected order %+v", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs("missing").
		WillReturnRows(mock.NewRows(orderColumnNames))

	if _, err := storage.Orders().GetByID(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByToken(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	want := sampleOrder()
	token := "tok-1"
	expires := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	want.Status = model.OrderStatusApproved
	want.DownloadToken = &token
	want.DownloadExpiresAt = &expires

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE download_token=").
		WithArgs(token).
		WillReturnRows(orderRow(mock, want))

	got, err := storage.Orders().GetByToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DownloadToken == nil || *got.DownloadToken != token {
		t.Errorf("expected token carried through, got %v", got.DownloadToken)
	}
	if got.DownloadExpiresAt == nil || !got.DownloadExpiresAt.Equal(expires) {
		t.Errorf("expected expiry carried through, got %v", got.DownloadExpiresAt)
	}
}

func TestGetByTokenNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE download_token=").
		WithArgs("missing").
		WillReturnRows(mock.NewRows(orderColumnNames))

	if _, err := storage.Orders().GetByToken(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrders(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	first := sampleOrder()
	second := sampleOrder()
	second.ID = "order-2"
	second.CreatedAt = first.CreatedAt.Add(-time.Hour)

	rows := orderRow(mock, first).AddRow(
		second.ID, second.Email, second.Name, second.Phone, second.BusinessName,
		second.PaymentMethod, second.ScreenshotURL, second.Status,
		second.DownloadCount, second.MaxDownloads, second.DownloadToken,
		second.DownloadExpiresAt, second.WatermarkedFileURL,
		second.CreatedAt, second.UpdatedAt, second.ApprovedAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC").WillReturnRows(rows)

	orders, err := storage.Orders().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "order-1" || orders[1].ID != "order-2" {
		t.Errorf("unexpected listing %+v", orders)
	}
}

func TestListOrdersQueryError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC").
		WillReturnError(errors.New("connection reset"))

	if _, err := storage.Orders().List(context.Background()); err == nil {
		t.Fatal("expected query error")
	}
}

func TestMarkRejected(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE orders SET status=").
		WithArgs(model.OrderStatusRejected, "order-1").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Orders().MarkRejected(context.Background(), "order-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkRejectedNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE orders SET status=").
		WithArgs(model.OrderStatusRejected, "missing").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.Orders().MarkRejected(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMarkApproved(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	approval := model.Approval{
		Token:      "tok-1",
		ExpiresAt:  time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
		FileURL:    "https://blob.test/downloads/order-1-apex-theme.zip",
		ApprovedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	mock.ExpectExec("UPDATE orders SET status=").
		WithArgs(model.OrderStatusApproved, approval.Token, approval.ExpiresAt,
			&approval.FileURL, approval.ApprovedAt, "order-1").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Orders().MarkApproved(context.Background(), "order-1", approval); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarkApprovedNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE orders SET status=").
		WithArgs(pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), "missing").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Orders().MarkApproved(context.Background(), "missing", model.Approval{Token: "tok-1"})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRegisterDownload(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE orders SET download_count").
		WithArgs("order-1").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Orders().RegisterDownload(context.Background(), "order-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterDownloadNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE orders SET download_count").
		WithArgs("missing").
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	if err := storage.Orders().RegisterDownload(context.Background(), "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()
	storage := &Storage{pool: mock, logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectPing().WillReturnError(errors.New("no connection"))
	if err := storage.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health check failure")
	}
}

func TestStorageClose(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectClose()
	storage.Close()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
