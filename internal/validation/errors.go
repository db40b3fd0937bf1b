package validation

import "errors"

var (
	ErrEmptyURL         = errors.New("original url is required")
	ErrInvalidURLFormat = errors.New("invalid url format")
	ErrUnsafeProtocol   = errors.New("url protocol not allowed")
	ErrURLTooLong       = errors.New("url exceeds maximum length")
	ErrInvalidCode      = errors.New("code must be 6-8 alphanumeric characters")
)

// IsURLError reports whether err rejects a target URL (as opposed to a code).
func IsURLError(err error) bool {
	return errors.Is(err, ErrEmptyURL) ||
		errors.Is(err, ErrInvalidURLFormat) ||
		errors.Is(err, ErrUnsafeProtocol) ||
		errors.Is(err, ErrURLTooLong)
}
