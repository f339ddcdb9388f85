package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// Phone number regex - international format with optional country code
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)

	// Optional sign, optional fraction; matches validator.js isNumeric
	numericRegex = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+$`)
)

// IsEmail validates an email address using RFC 5322 parsing plus the
// restrictions typical for web forms.
func IsEmail(value any, _ ...any) any {
	s := toString(value)
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	localPart, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || localPart == "" || strings.Contains(domain, "@") {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return satisfies(s, "email")
}

// IsURL validates an absolute URL. Optional {"protocols": [...]} restricts schemes.
func IsURL(value any, args ...any) any {
	s := toString(value)
	if strings.TrimSpace(s) == "" {
		return false
	}

	u, err := url.ParseRequestURI(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	if opts := options(args); opts != nil {
		if protocols := flatten([]any{opts["protocols"]}); len(protocols) > 0 && protocols[0] != nil {
			for _, p := range protocols {
				if strings.EqualFold(toString(p), u.Scheme) {
					return true
				}
			}
			return false
		}
	}
	return true
}

// IsIP validates an IP address, optionally restricted to version 4 or 6.
func IsIP(value any, args ...any) any {
	s := strings.TrimSpace(toString(value))
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}

	version := 0
	if len(args) > 0 {
		version, _ = toInt(args[0])
	}
	switch version {
	case 4:
		return ip.To4() != nil && !strings.Contains(s, ":")
	case 6:
		return strings.Contains(s, ":")
	}
	return true
}

func IsMACAddress(value any, _ ...any) any {
	return satisfies(toString(value), "mac")
}

func IsAlpha(value any, _ ...any) any {
	return alphaRegex.MatchString(toString(value))
}

func IsAlphanumeric(value any, _ ...any) any {
	return alphanumericRegex.MatchString(toString(value))
}

// IsNumeric accepts an optionally signed decimal number written as a string.
func IsNumeric(value any, _ ...any) any {
	return numericRegex.MatchString(toString(value))
}

// IsMobilePhone validates a phone number in international (E.164-like) format.
// Spaces and dashes are ignored.
func IsMobilePhone(value any, _ ...any) any {
	s := toString(value)
	if strings.TrimSpace(s) == "" {
		return false
	}
	cleaned := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "-", "")

	// Must be at least 7 digits (minimum valid phone number)
	if len(cleaned) < 7 {
		return false
	}
	return phoneRegex.MatchString(cleaned)
}

func IsJSON(value any, _ ...any) any {
	return satisfies(toString(value), "json")
}

// IsPort validates a TCP/UDP port number in the 1-65535 range.
func IsPort(value any, _ ...any) any {
	f, ok := toFloat(value)
	if !ok || f != float64(int(f)) {
		return false
	}
	return f >= 1 && f <= 65535
}

// IsLatLong validates a "latitude,longitude" pair.
func IsLatLong(value any, _ ...any) any {
	lat, long, ok := strings.Cut(toString(value), ",")
	if !ok {
		return false
	}
	return satisfies(strings.TrimSpace(lat), "latitude") && satisfies(strings.TrimSpace(long), "longitude")
}
