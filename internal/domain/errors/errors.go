package errors

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrInvalidAction        = errors.New("invalid action")
	ErrLinkExpired          = errors.New("download link expired")
	ErrFileMissing          = errors.New("theme file not found")
)
