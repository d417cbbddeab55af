package config

import "time"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// TokenCookieName is the cookie carrying the signed credential.
	TokenCookieName = "token"
	// TokenTTL is fixed; credentials always expire one day after issue.
	TokenTTL = 24 * time.Hour

	SuiteCategory        = "SUITE"
	AvailableStatus      = "Available"
	UnavailableStatus    = "Unavailable"
	SuiteShowcaseLimit   = 6
	RecentReviewsLimit   = 6
	DefaultMaxPageSize   = 100
	MinTokenSecretLength = 16
)
