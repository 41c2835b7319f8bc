package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Counters covering the order fulfillment flow.
var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created through intake",
		},
	)

	OrdersApprovedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_approved_total",
			Help: "Total number of orders approved by an administrator",
		},
	)

	OrdersRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Total number of orders rejected by an administrator",
		},
	)

	OrderDownloadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_downloads_total",
			Help: "Total number of successful download redemptions",
		},
	)

	DownloadEmailsFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "download_emails_failed_total",
			Help: "Total number of download notification emails that failed to send",
		},
	)

	WatermarkFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "watermark_fallbacks_total",
			Help: "Total number of approvals that fell back to the unwatermarked archive",
		},
	)
)

var registerOnce sync.Once

// Register registers all collectors with the default registry.
// Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			OrdersCreatedTotal,
			OrdersApprovedTotal,
			OrdersRejectedTotal,
			OrderDownloadsTotal,
			DownloadEmailsFailedTotal,
			WatermarkFallbacksTotal,
		)
	})
}
