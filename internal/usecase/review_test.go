package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/apextheme/apexstore/internal/domain/errors"
	"github.com/apextheme/apexstore/internal/domain/model"
	"github.com/apextheme/apexstore/internal/test"
	"github.com/apextheme/apexstore/internal/usecase"
)

const (
	testThemeURL = "https://blob.test/theme/apex-theme.zip"
	testBaseURL  = "https://apextheme.test"
)

func pendingOrder() *model.Order {
	return &model.Order{
		ID:            "order-1",
		Email:         "jordan@example.com",
		Name:          "Jordan Customer",
		Phone:         "01012345678",
		PaymentMethod: model.PaymentVodafoneCash,
		ScreenshotURL: "https://blob.test/screenshots/receipt.png",
		Status:        model.OrderStatusPending,
		MaxDownloads:  model.DefaultMaxDownloads,
	}
}

func themeArchive(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("assets/theme.css")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := f.Write([]byte("body {}")); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func newReviewForTest(repo *test.OrderRepositoryStub, archives *test.ArchiveStoreStub, notifier *test.NotifierStub) *usecase.ReviewUseCase {
	return usecase.NewReviewUseCase(repo, archives, notifier, testThemeURL, testBaseURL, discardLogger())
}

func TestReviewRejectsOrder(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	notifier := &test.NotifierStub{}
	u := newReviewForTest(repo, &test.ArchiveStoreStub{}, notifier)

	result, err := u.Review(context.Background(), "order-1", usecase.ActionReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != model.OrderStatusRejected {
		t.Errorf("expected rejected status, got %s", result.Status)
	}
	if result.DownloadURL != "" {
		t.Error("expected no download URL on rejection")
	}
	if len(repo.Rejected) != 1 || repo.Rejected[0] != "order-1" {
		t.Errorf("expected rejection persisted, got %v", repo.Rejected)
	}
	if len(notifier.Sent) != 0 {
		t.Error("expected no email on rejection")
	}
}

func TestReviewApprovesAndIssuesLink(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	archives := &test.ArchiveStoreStub{Archive: themeArchive(t)}
	notifier := &test.NotifierStub{}
	u := newReviewForTest(repo, archives, notifier)

	frozen := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	u.SetNowForTest(func() time.Time { return frozen })

	result, err := u.Review(context.Background(), "order-1", usecase.ActionApprove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != model.OrderStatusApproved {
		t.Errorf("expected approved status, got %s", result.Status)
	}

	approval, ok := repo.Approvals["order-1"]
	if !ok {
		t.Fatal("expected approval persisted")
	}
	if approval.Token == "" {
		t.Error("expected a generated download token")
	}
	if want := frozen.Add(48 * time.Hour); !approval.ExpiresAt.Equal(want) {
		t.Errorf("expected expiry %v, got %v", want, approval.ExpiresAt)
	}
	if !approval.ApprovedAt.Equal(frozen) {
		t.Errorf("expected approval timestamp %v, got %v", frozen, approval.ApprovedAt)
	}

	wantURL := testBaseURL + "/api/download?token=" + approval.Token
	if result.DownloadURL != wantURL {
		t.Errorf("expected download URL %s, got %s", wantURL, result.DownloadURL)
	}

	if len(archives.FetchedURLs) != 1 || archives.FetchedURLs[0] != testThemeURL {
		t.Errorf("expected original archive fetched, got %v", archives.FetchedURLs)
	}
	if len(archives.Uploads) != 1 {
		t.Fatalf("expected 1 artifact upload, got %d", len(archives.Uploads))
	}
	upload := archives.Uploads[0]
	if upload.Path != "downloads/order-1-apex-theme.zip" {
		t.Errorf("unexpected artifact path %q", upload.Path)
	}
	if upload.ContentType != "application/zip" {
		t.Errorf("unexpected content type %q", upload.ContentType)
	}
	if approval.FileURL != "https://blob.test/"+upload.Path {
		t.Errorf("expected approval to carry the artifact URL, got %s", approval.FileURL)
	}

	if len(notifier.Sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(notifier.Sent))
	}
	sent := notifier.Sent[0]
	if sent.To != "jordan@example.com" || sent.CustomerName != "Jordan Customer" {
		t.Errorf("unexpected recipient %+v", sent)
	}
	if sent.DownloadURL != wantURL {
		t.Errorf("expected email link %s, got %s", wantURL, sent.DownloadURL)
	}
}

func TestReviewApproveWatermarksArchive(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	archives := &test.ArchiveStoreStub{Archive: themeArchive(t)}
	u := newReviewForTest(repo, archives, &test.NotifierStub{})

	if _, err := u.Review(context.Background(), "order-1", usecase.ActionApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := archives.Uploads[0].Data
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("uploaded artifact is not a valid archive: %v", err)
	}

	names := make(map[string]bool, len(reader.File))
	for _, entry := range reader.File {
		names[entry.Name] = true
	}
	if !names["LICENSE.txt"] || !names["assets/LICENSE.txt"] {
		t.Errorf("expected license entries in artifact, got %v", names)
	}

	for _, entry := range reader.File {
		if entry.Name != "assets/theme.css" {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			t.Fatalf("open stamped entry: %v", err)
		}
		var content bytes.Buffer
		if _, err := content.ReadFrom(rc); err != nil {
			t.Fatalf("read stamped entry: %v", err)
		}
		rc.Close()
		if !strings.Contains(content.String(), "jordan@example.com") {
			t.Error("expected customer email stamped into assets/theme.css")
		}
	}
}

func TestReviewApproveFallsBackWhenFetchFails(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	archives := &test.ArchiveStoreStub{
		FetchFn: func(context.Context, string) ([]byte, error) {
			return nil, errors.New("origin unreachable")
		},
	}
	u := newReviewForTest(repo, archives, &test.NotifierStub{})

	result, err := u.Review(context.Background(), "order-1", usecase.ActionApprove)
	if err != nil {
		t.Fatalf("expected approval to succeed despite fetch failure, got %v", err)
	}
	if result.Status != model.OrderStatusApproved {
		t.Errorf("expected approved status, got %s", result.Status)
	}
	if repo.Approvals["order-1"].FileURL != testThemeURL {
		t.Errorf("expected fallback to original URL, got %s", repo.Approvals["order-1"].FileURL)
	}
}

func TestReviewApproveFallsBackWhenUploadFails(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	archives := &test.ArchiveStoreStub{
		Archive: themeArchive(t),
		UploadFn: func(context.Context, string, string, []byte) (string, error) {
			return "", errors.New("blob store down")
		},
	}
	u := newReviewForTest(repo, archives, &test.NotifierStub{})

	if _, err := u.Review(context.Background(), "order-1", usecase.ActionApprove); err != nil {
		t.Fatalf("expected approval to succeed despite upload failure, got %v", err)
	}
	if repo.Approvals["order-1"].FileURL != testThemeURL {
		t.Errorf("expected fallback to original URL, got %s", repo.Approvals["order-1"].FileURL)
	}
}

func TestReviewApproveSurvivesEmailFailure(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	notifier := &test.NotifierStub{
		SendFn: func(context.Context, string, string, string, time.Time) error {
			return errors.New("mail provider down")
		},
	}
	u := newReviewForTest(repo, &test.ArchiveStoreStub{Archive: themeArchive(t)}, notifier)

	result, err := u.Review(context.Background(), "order-1", usecase.ActionApprove)
	if err != nil {
		t.Fatalf("expected approval to succeed despite email failure, got %v", err)
	}
	if result.Status != model.OrderStatusApproved {
		t.Errorf("expected approved status, got %s", result.Status)
	}
}

func TestReviewApproveWithoutThemeURL(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	archives := &test.ArchiveStoreStub{}
	u := usecase.NewReviewUseCase(repo, archives, &test.NotifierStub{}, "", testBaseURL, discardLogger())

	if _, err := u.Review(context.Background(), "order-1", usecase.ActionApprove); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Approvals["order-1"].FileURL != "" {
		t.Errorf("expected empty artifact URL when no theme is configured, got %s", repo.Approvals["order-1"].FileURL)
	}
	if len(archives.FetchedURLs) != 0 {
		t.Error("expected no fetch when no theme is configured")
	}
}

func TestReviewUnknownOrder(t *testing.T) {
	u := newReviewForTest(test.NewOrderRepositoryStub(), &test.ArchiveStoreStub{}, &test.NotifierStub{})

	if _, err := u.Review(context.Background(), "missing", usecase.ActionApprove); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReviewInvalidAction(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Put(pendingOrder())
	u := newReviewForTest(repo, &test.ArchiveStoreStub{}, &test.NotifierStub{})

	if _, err := u.Review(context.Background(), "order-1", "escalate"); !errors.Is(err, domainErrors.ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
}
