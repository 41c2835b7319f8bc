package model

import "time"

// OrderStatus describes the review lifecycle of a purchase.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
	OrderStatusRejected OrderStatus = "rejected"
)

// DefaultMaxDownloads limits how many times an approved archive may be fetched.
const DefaultMaxDownloads = 3

// Order describes a single purchase attempt and its fulfillment state.
type Order struct {
	ID                 string
	Email              string
	Name               string
	Phone              string
	BusinessName       *string
	PaymentMethod      PaymentMethod
	ScreenshotURL      string
	Status             OrderStatus
	DownloadCount      int
	MaxDownloads       int
	DownloadToken      *string
	DownloadExpiresAt  *time.Time
	WatermarkedFileURL *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ApprovedAt         *time.Time
}

// Approval carries the fields persisted when an order is approved.
type Approval struct {
	Token      string
	ExpiresAt  time.Time
	FileURL    string
	ApprovedAt time.Time
}
