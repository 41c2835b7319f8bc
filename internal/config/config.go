package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	AdminSecret        string
	OriginalThemeURL   string
	PublicBaseURL      string
	BlobStoreURL       string
	BlobStoreToken     string
	MailAPIURL         string
	MailAPIKey         string
	VodafoneCashNumber string
	InstapayNumber     string
	TeldaNumber        string
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultAdminSecret     = "change-me-in-production"
	defaultPublicBaseURL   = "http://localhost:8080"
	defaultBlobStoreURL    = "https://blob.vercel-storage.com"
	defaultMailAPIURL      = "https://api.resend.com"
	defaultPaymentNumber   = "01XXXXXXXXX"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		AdminSecret:        getString(lookup, "ADMIN_SECRET", defaultAdminSecret),
		OriginalThemeURL:   getString(lookup, "ORIGINAL_THEME_URL", ""),
		PublicBaseURL:      getString(lookup, "PUBLIC_BASE_URL", defaultPublicBaseURL),
		BlobStoreURL:       getString(lookup, "BLOB_STORE_URL", defaultBlobStoreURL),
		BlobStoreToken:     getString(lookup, "BLOB_STORE_TOKEN", ""),
		MailAPIURL:         getString(lookup, "MAIL_API_URL", defaultMailAPIURL),
		MailAPIKey:         getString(lookup, "MAIL_API_KEY", ""),
		VodafoneCashNumber: getString(lookup, "VODAFONE_CASH_NUMBER", defaultPaymentNumber),
		InstapayNumber:     getString(lookup, "INSTAPAY_NUMBER", defaultPaymentNumber),
		TeldaNumber:        getString(lookup, "TELDA_NUMBER", defaultPaymentNumber),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("apexstore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AdminSecret, "admin-secret", cfg.AdminSecret, "Shared secret for admin endpoints")
	fs.StringVar(&cfg.OriginalThemeURL, "theme-url", cfg.OriginalThemeURL, "URL of the original theme archive")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", cfg.PublicBaseURL, "Public base URL used in download links")
	fs.StringVar(&cfg.BlobStoreURL, "blob-url", cfg.BlobStoreURL, "Object storage endpoint")
	fs.StringVar(&cfg.BlobStoreToken, "blob-token", cfg.BlobStoreToken, "Object storage credential")
	fs.StringVar(&cfg.MailAPIURL, "mail-url", cfg.MailAPIURL, "Email provider endpoint")
	fs.StringVar(&cfg.MailAPIKey, "mail-key", cfg.MailAPIKey, "Email provider credential")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("ADMIN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read admin secret file: %w", err)
		}
		cfg.AdminSecret = string(content)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
