package validator

import (
	"regexp"
	"strings"
)

var (
	slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	// Semantic versioning pattern: MAJOR.MINOR.PATCH with optional pre-release and build metadata
	semverRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)
)

// IsSlug validates URL-safe slugs, rejecting leading/trailing hyphens.
func IsSlug(value any, _ ...any) any {
	return slugRegex.MatchString(toString(value))
}

func IsSemVer(value any, _ ...any) any {
	return semverRegex.MatchString(toString(value))
}

// IsFQDN validates a fully qualified domain name.
func IsFQDN(value any, _ ...any) any {
	s := toString(value)
	if strings.TrimSpace(s) == "" || len(s) > 253 {
		return false
	}

	labels := strings.Split(s, ".")
	if len(labels) < 2 {
		return false
	}

	for i, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, char := range label {
			//nolint:staticcheck // More readable than De Morgan's law
			if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') ||
				(char >= '0' && char <= '9') || char == '-') {
				return false
			}
		}

		// TLD must be at least 2 characters and only letters
		if i == len(labels)-1 {
			if len(label) < 2 {
				return false
			}
			for _, char := range label {
				//nolint:staticcheck // More readable than De Morgan's law
				if !((char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')) {
					return false
				}
			}
		}
	}

	return satisfies(s, "fqdn")
}
