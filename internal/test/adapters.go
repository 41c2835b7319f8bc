package test

import (
	"context"
	"sync"
	"time"
)

// UploadCall records a single blob upload.
type UploadCall struct {
	Path        string
	ContentType string
	Data        []byte
}

// ArchiveStoreStub simulates the blob store for archive and screenshot traffic.
type ArchiveStoreStub struct {
	UploadFn func(context.Context, string, string, []byte) (string, error)
	FetchFn  func(context.Context, string) ([]byte, error)

	Archive []byte
	FetchedURLs []string

	mu      sync.Mutex
	Uploads []UploadCall
}

// Upload records the call and returns a deterministic URL.
func (s *ArchiveStoreStub) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, path, contentType, data)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Uploads = append(s.Uploads, UploadCall{Path: path, ContentType: contentType, Data: data})
	return "https://blob.test/" + path, nil
}

// Fetch returns the configured archive bytes.
func (s *ArchiveStoreStub) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, fileURL)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FetchedURLs = append(s.FetchedURLs, fileURL)
	return s.Archive, nil
}

// SentEmail records one download notification.
type SentEmail struct {
	To           string
	CustomerName string
	DownloadURL  string
	ExpiresAt    time.Time
}

// NotifierStub captures download notifications.
type NotifierStub struct {
	SendFn func(context.Context, string, string, string, time.Time) error

	mu   sync.Mutex
	Sent []SentEmail
}

// SendDownloadLink records the notification or delegates to the override.
func (s *NotifierStub) SendDownloadLink(ctx context.Context, to, customerName, downloadURL string, expiresAt time.Time) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, to, customerName, downloadURL, expiresAt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, SentEmail{To: to, CustomerName: customerName, DownloadURL: downloadURL, ExpiresAt: expiresAt})
	return nil
}

// VerifierStub implements the middleware secret contract.
type VerifierStub struct {
	Accept string
}

// Verify accepts only the configured candidate.
func (s VerifierStub) Verify(candidate string) bool {
	return s.Accept != "" && candidate == s.Accept
}

// HealthCheckerStub reports the configured error.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
