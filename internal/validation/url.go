package validation

import (
	"net/url"
	"regexp"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{6,8}$`)

// ValidateTargetURL reports whether rawURL parses as an absolute http or https URL.
func ValidateTargetURL(rawURL string) bool {
	return checkTargetURL(rawURL) == nil
}

// ValidateCodeFormat reports whether code is 6 to 8 characters of [A-Za-z0-9].
func ValidateCodeFormat(code string) bool {
	return codePattern.MatchString(code)
}

func checkTargetURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	// url.Parse lower-cases the scheme.
	if blockedProtocols[parsed.Scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[parsed.Scheme] {
		return ErrInvalidURLFormat
	}

	if parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	return nil
}

// LinkValidator gates link creation input and reports why a value was rejected.
type LinkValidator struct {
	maxURLLength int
}

func NewLinkValidator(maxURLLength int) *LinkValidator {
	return &LinkValidator{maxURLLength: maxURLLength}
}

func (v *LinkValidator) ValidateTargetURL(rawURL string) error {
	if rawURL == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxURLLength {
		return ErrURLTooLong
	}

	return checkTargetURL(rawURL)
}

func (v *LinkValidator) ValidateCode(code string) error {
	if !ValidateCodeFormat(code) {
		return ErrInvalidCode
	}
	return nil
}
