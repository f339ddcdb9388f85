package validator

import (
	"strings"

	"github.com/google/uuid"
)

// IsUUID validates the canonical 36-character UUID form. An optional version
// argument (3, 4, 5, "all", ...) restricts the accepted UUID version.
func IsUUID(value any, args ...any) any {
	s := toString(value)
	if strings.TrimSpace(s) == "" {
		return false
	}

	// Fast rejection: check length and hyphen positions before parsing
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	if len(args) == 0 || toString(args[0]) == "all" {
		return true
	}
	version, ok := toInt(args[0])
	if !ok {
		return false
	}
	return id != uuid.Nil && int(id.Version()) == version
}
