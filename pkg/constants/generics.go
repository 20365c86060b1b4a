package constants

import "time"

// Default rate limiting configuration
const (
	// DefaultRateLimitRequests is the default number of requests allowed per time window
	DefaultRateLimitRequests = 100
	// DefaultRateLimitWindowMinutes is the default time window for rate limiting
	DefaultRateLimitWindowMinutes = 1
)

// DefaultRequestTimeout bounds a whole request, upstream call included.
const DefaultRequestTimeout = 30 * time.Second

// DefaultRateLimitWindow returns the default rate limit window duration
func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}

// Upstream record property names in the waitlist database.
const (
	NotionPropertyEmail          = "Email"
	NotionPropertyName           = "Name"
	NotionPropertyProfession     = "Profession"
	NotionPropertyReferralSource = "Referral Source"
)
