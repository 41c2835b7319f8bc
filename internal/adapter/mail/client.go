package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Message is a single transactional email.
type Message struct {
	From    string   `json:"from"`
	ReplyTo string   `json:"reply_to,omitempty"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Client sends mail through a Resend-compatible HTTP API.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// errorResponse mirrors the provider's error payload.
type errorResponse struct {
	Message string `json:"message"`
}

// NewClient creates an email client with default timeout.
func NewClient(baseURL, apiKey string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mail api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mail api url must be absolute")
	}
	return &Client{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

// Send delivers the message, returning the provider's error message on rejection.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	endpoint := c.baseURL.JoinPath("emails")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	raw, _ := io.ReadAll(resp.Body)
	var provider errorResponse
	_ = json.Unmarshal(raw, &provider)
	c.logger.Error("email send failed",
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(raw)),
	)
	if provider.Message != "" {
		return fmt.Errorf("send email: %s", provider.Message)
	}
	return fmt.Errorf("send email: %s", resp.Status)
}
