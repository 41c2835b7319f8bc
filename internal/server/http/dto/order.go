package dto

import "time"

// OrderResponse is the admin-facing view of an order.
type OrderResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Name               string     `json:"name"`
	Phone              string     `json:"phone"`
	BusinessName       *string    `json:"business_name,omitempty"`
	PaymentMethod      string     `json:"payment_method"`
	ScreenshotURL      string     `json:"screenshot_url"`
	Status             string     `json:"status"`
	DownloadCount      int        `json:"download_count"`
	MaxDownloads       int        `json:"max_downloads"`
	DownloadToken      *string    `json:"download_token,omitempty"`
	DownloadExpiresAt  *time.Time `json:"download_expires_at,omitempty"`
	WatermarkedFileURL *string    `json:"watermarked_file_url,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
}

// ListOrdersResponse wraps the admin listing.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// IntakeResponse confirms order creation.
type IntakeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// ReviewRequest selects the admin action for an order.
type ReviewRequest struct {
	OrderID string `json:"orderId"`
	Action  string `json:"action"`
}

// ReviewResponse reports the review outcome.
type ReviewResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// ErrorResponse carries a human-readable error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PaymentChannelResponse describes one manual payment rail for checkout.
type PaymentChannelResponse struct {
	Method       string `json:"method"`
	Label        string `json:"label"`
	Number       string `json:"number"`
	Instructions string `json:"instructions"`
}
