package blobstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Client stores and retrieves public blobs over HTTP.
type Client interface {
	Upload(ctx context.Context, blobPath, contentType string, data []byte) (string, error)
	Fetch(ctx context.Context, fileURL string) ([]byte, error)
}

// HTTPClient implements Client against a Vercel-Blob-compatible API.
type HTTPClient struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// uploadResponse mirrors the JSON payload returned on a successful upload.
type uploadResponse struct {
	URL string `json:"url"`
}

// NewHTTPClient creates a blob store client with default timeout.
func NewHTTPClient(baseURL, token string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse blob store url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("blob store url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		token:   token,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload stores data under blobPath and returns its public URL.
func (c *HTTPClient) Upload(ctx context.Context, blobPath, contentType string, data []byte) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, blobPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint.String(), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("blob upload failed",
			slog.String("path", blobPath),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return "", fmt.Errorf("blob upload: %s", resp.Status)
	}

	var payload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if payload.URL == "" {
		return "", fmt.Errorf("blob upload: empty url in response")
	}
	return payload.URL, nil
}

// Fetch downloads the blob at fileURL.
func (c *HTTPClient) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch blob: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
