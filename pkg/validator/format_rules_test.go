package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func TestFormatRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   validator.Func
		val  any
		args []any
		want bool
	}{
		{"valid email", validator.IsEmail, "user@example.com", nil, true},
		{"email with subdomain", validator.IsEmail, "first.last@mail.example.org", nil, true},
		{"email without domain dot", validator.IsEmail, "user@localhost", nil, false},
		{"email with display name", validator.IsEmail, "John <john@example.com>", nil, false},
		{"not an email", validator.IsEmail, "invalid", nil, false},
		{"empty email", validator.IsEmail, "", nil, false},

		{"valid url", validator.IsURL, "https://example.com/path?q=1", nil, true},
		{"relative url", validator.IsURL, "example.com/path", nil, false},
		{"url with allowed protocol", validator.IsURL, "https://example.com", []any{map[string]any{"protocols": []any{"https"}}}, true},
		{"url with disallowed protocol", validator.IsURL, "http://example.com", []any{map[string]any{"protocols": []any{"https"}}}, false},

		{"ipv4", validator.IsIP, "192.168.0.1", nil, true},
		{"ipv4 restricted to 4", validator.IsIP, "192.168.0.1", []any{4}, true},
		{"ipv4 restricted to 6", validator.IsIP, "192.168.0.1", []any{6}, false},
		{"ipv6 restricted to 6", validator.IsIP, "::1", []any{6}, true},
		{"ipv6 restricted to 4", validator.IsIP, "::1", []any{4}, false},
		{"invalid ip", validator.IsIP, "999.1.1.1", nil, false},

		{"mac address", validator.IsMACAddress, "00:1A:2B:3C:4D:5E", nil, true},
		{"invalid mac address", validator.IsMACAddress, "00:1A:2B", nil, false},

		{"alpha", validator.IsAlpha, "abcXYZ", nil, true},
		{"alpha with digit", validator.IsAlpha, "abc1", nil, false},
		{"alphanumeric", validator.IsAlphanumeric, "abc123", nil, true},
		{"alphanumeric with space", validator.IsAlphanumeric, "abc 123", nil, false},

		{"numeric signed decimal", validator.IsNumeric, "-12.5", nil, true},
		{"numeric int value", validator.IsNumeric, 42, nil, true},
		{"not numeric", validator.IsNumeric, "12a", nil, false},

		{"phone with separators", validator.IsMobilePhone, "+1 555-123-4567", nil, true},
		{"phone too short", validator.IsMobilePhone, "123", nil, false},
		{"phone with letters", validator.IsMobilePhone, "+1555CALLME", nil, false},

		{"json object", validator.IsJSON, `{"a":1}`, nil, true},
		{"broken json", validator.IsJSON, `{"a":`, nil, false},

		{"port number", validator.IsPort, 8080, nil, true},
		{"port string", validator.IsPort, "443", nil, true},
		{"port zero", validator.IsPort, 0, nil, false},
		{"port out of range", validator.IsPort, "70000", nil, false},

		{"lat long", validator.IsLatLong, "40.7128,-74.0060", nil, true},
		{"lat out of range", validator.IsLatLong, "100,0", nil, false},
		{"lat long without comma", validator.IsLatLong, "40.7128", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.val, tt.args...))
		})
	}
}
