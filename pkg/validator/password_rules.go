package validator

import "regexp"

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int // Minimum number of different character classes required
}

// DefaultPasswordStrength returns NIST-recommended password policy: 8-128 chars, 3+ character classes.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		MinCharClasses:   3,
	}
}

// passwordConfig overlays option map keys (minLength, maxLength, requireUppercase,
// requireLowercase, requireDigits, requireSpecial, minCharClasses) on the defaults.
func passwordConfig(args []any) PasswordStrengthConfig {
	cfg := DefaultPasswordStrength()
	if len(args) > 0 {
		if c, ok := args[0].(PasswordStrengthConfig); ok {
			return c
		}
	}

	opts := options(args)
	if n, ok := toInt(opts["minLength"]); ok {
		cfg.MinLength = n
	}
	if n, ok := toInt(opts["maxLength"]); ok {
		cfg.MaxLength = n
	}
	if n, ok := toInt(opts["minCharClasses"]); ok {
		cfg.MinCharClasses = n
	}
	for key, dst := range map[string]*bool{
		"requireUppercase": &cfg.RequireUppercase,
		"requireLowercase": &cfg.RequireLowercase,
		"requireDigits":    &cfg.RequireDigits,
		"requireSpecial":   &cfg.RequireSpecial,
	} {
		if b, ok := opts[key].(bool); ok {
			*dst = b
		}
	}
	return cfg
}

// IsStrongPassword checks length and character class requirements.
func IsStrongPassword(value any, args ...any) any {
	s := toString(value)
	config := passwordConfig(args)

	if len(s) < config.MinLength || len(s) > config.MaxLength {
		return false
	}

	hasUpper := uppercaseRegex.MatchString(s)
	hasLower := lowercaseRegex.MatchString(s)
	hasDigit := digitRegex.MatchString(s)
	hasSpecial := specialCharRegex.MatchString(s)

	charClasses := 0
	for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if has {
			charClasses++
		}
	}

	if config.RequireUppercase && !hasUpper {
		return false
	}
	if config.RequireLowercase && !hasLower {
		return false
	}
	if config.RequireDigits && !hasDigit {
		return false
	}
	if config.RequireSpecial && !hasSpecial {
		return false
	}

	return charClasses >= config.MinCharClasses
}
