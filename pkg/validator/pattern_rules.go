package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/fieldcheck/pkg/cache"
)

var (
	hexStringRegex = regexp.MustCompile(`^(0x|0h)?[0-9A-Fa-f]+$`)
	base64Regex    = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

	// Compiled string patterns, keyed by pattern with flags applied.
	patterns = cache.NewLRU[string, *regexp.Regexp](256)
)

// Matches validates against a pattern given as *regexp.Regexp or as a string
// with optional modifiers. Of the modifiers only "i", "m" and "s" apply;
// others such as "g" are ignored. Invalid patterns fail.
func Matches(value any, args ...any) any {
	if len(args) == 0 {
		return false
	}

	var re *regexp.Regexp
	switch p := args[0].(type) {
	case *regexp.Regexp:
		re = p
	default:
		pattern := toString(p)
		if len(args) > 1 {
			if flags := regexpFlags(toString(args[1])); flags != "" {
				pattern = "(?" + flags + ")" + pattern
			}
		}
		compiled, err := patterns.GetOrLoad(pattern, func() (*regexp.Regexp, error) {
			return regexp.Compile(pattern)
		})
		if err != nil {
			return false
		}
		re = compiled
	}
	return re.MatchString(toString(value))
}

func regexpFlags(modifiers string) string {
	var b strings.Builder
	for _, m := range modifiers {
		if strings.ContainsRune("ims", m) && !strings.ContainsRune(b.String(), m) {
			b.WriteRune(m)
		}
	}
	return b.String()
}

func IsASCII(value any, _ ...any) any {
	for _, r := range toString(value) {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func IsHexadecimal(value any, _ ...any) any {
	return hexStringRegex.MatchString(toString(value))
}

// IsBase64 validates standard padded base64.
func IsBase64(value any, _ ...any) any {
	s := toString(value)
	if strings.TrimSpace(s) == "" || len(s)%4 != 0 {
		return false
	}
	return base64Regex.MatchString(s)
}
