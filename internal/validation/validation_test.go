package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "john@example.com", true},
		{"dots and dashes in local part", "john.doe-jr@example.com", true},
		{"subdomain", "john@mail.example.co.uk", true},
		{"digits in domain", "user1@host123.io", true},
		{"missing at sign", "johnexample.com", false},
		{"missing domain dot", "john@example", false},
		{"empty string", "", false},
		{"missing local part", "@example.com", false},
		{"space in local part", "john doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.email))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"two integer digits two fraction digits", "10.30", 10.30, false},
		{"three integer digits", "999.99", 999.99, false},
		{"integer only", "5", 5, false},
		{"single fraction digit", "12.5", 12.5, false},
		{"negative within range", "-10.25", -10.25, false},
		{"four integer digits", "1111.34", 0, true},
		{"exactly one thousand", "1000", 0, true},
		{"three fraction digits", "10.301", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPriceFormat)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
