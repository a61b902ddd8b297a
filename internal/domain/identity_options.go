package domain

import (
	"strings"
	"time"
	"unicode"
)

// PasswordOptions configures the password policy.
type PasswordOptions struct {
	RequireDigit           bool `yaml:"require_digit"`
	RequiredLength         int  `yaml:"required_length"`
	RequireUppercase       bool `yaml:"require_uppercase"`
	RequireLowercase       bool `yaml:"require_lowercase"`
	RequireNonAlphanumeric bool `yaml:"require_non_alphanumeric"`
	RequiredUniqueChars    int  `yaml:"required_unique_chars"`
}

// UserOptions configures user account rules.
type UserOptions struct {
	RequireUniqueEmail bool `yaml:"require_unique_email"`
}

// LockoutOptions configures the account lockout policy.
type LockoutOptions struct {
	MaxFailedAccessAttempts int           `yaml:"max_failed_access_attempts"`
	DefaultLockoutTimeSpan  time.Duration `yaml:"default_lockout_time_span"`
}

// IdentityOptions groups the identity store policies.
type IdentityOptions struct {
	Password PasswordOptions `yaml:"password"`
	User     UserOptions     `yaml:"user"`
	Lockout  LockoutOptions  `yaml:"lockout"`
}

// DefaultIdentityOptions returns the policies used when no override is configured.
func DefaultIdentityOptions() IdentityOptions {
	return IdentityOptions{
		Password: PasswordOptions{
			RequireDigit:           true,
			RequiredLength:         8,
			RequireUppercase:       false,
			RequireLowercase:       true,
			RequireNonAlphanumeric: true,
			RequiredUniqueChars:    1,
		},
		User: UserOptions{
			RequireUniqueEmail: true,
		},
		Lockout: LockoutOptions{
			MaxFailedAccessAttempts: 5,
			DefaultLockoutTimeSpan:  5 * time.Minute,
		},
	}
}

// Validate checks the password against the policy and reports every unmet rule.
func (p PasswordOptions) Validate(password string) error {
	var reasons []string
	if len([]rune(password)) < p.RequiredLength {
		reasons = append(reasons, "too_short")
	}

	var hasUpper, hasLower, hasDigit, hasOther bool
	unique := map[rune]struct{}{}
	for _, r := range password {
		unique[r] = struct{}{}
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasOther = true
		}
	}

	if p.RequireDigit && !hasDigit {
		reasons = append(reasons, "missing_digit")
	}
	if p.RequireUppercase && !hasUpper {
		reasons = append(reasons, "missing_upper")
	}
	if p.RequireLowercase && !hasLower {
		reasons = append(reasons, "missing_lower")
	}
	if p.RequireNonAlphanumeric && !hasOther {
		reasons = append(reasons, "missing_non_alphanumeric")
	}
	if len(unique) < p.RequiredUniqueChars {
		reasons = append(reasons, "too_few_unique_chars")
	}

	if len(reasons) > 0 {
		return NewValidationErr("password does not satisfy policy: " + strings.Join(reasons, ","))
	}
	return nil
}

// Validate checks that the options are usable.
func (o IdentityOptions) Validate() error {
	if o.Password.RequiredLength < 1 {
		return NewValidationErr("password.required_length must be at least 1")
	}
	if o.Password.RequiredUniqueChars < 0 {
		return NewValidationErr("password.required_unique_chars cannot be negative")
	}
	if o.Lockout.MaxFailedAccessAttempts < 1 {
		return NewValidationErr("lockout.max_failed_access_attempts must be at least 1")
	}
	if o.Lockout.DefaultLockoutTimeSpan <= 0 {
		return NewValidationErr("lockout.default_lockout_time_span must be positive")
	}
	return nil
}
