// Package validation holds the pure input checks used at the service boundary.
package validation

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	// ErrPriceFormat is returned when a price does not fit 3 integer
	// digits and 2 fraction digits.
	ErrPriceFormat = errors.New("price must have at most 3 integer digits and 2 fraction digits")

	emailPattern = regexp.MustCompile(`^[\w.-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.]+$`)
	pricePattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{1,2})?$`)
)

// ValidateEmail reports whether s looks like local@domain.tld.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParsePrice parses the raw price literal as sent by the client.
// Values with a magnitude of 1000.00 or more, or with more than two
// fraction digits, fail with ErrPriceFormat rather than being truncated.
func ParsePrice(raw string) (float64, error) {
	if !pricePattern.MatchString(raw) {
		return 0, ErrPriceFormat
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrPriceFormat
	}
	return v, nil
}
