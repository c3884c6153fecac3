package service

import "time"

// TokenService defines the interface for issuing and validating the access
// tokens used by the administrative routes. The issuing mechanics are
// infrastructure; use cases only see this contract.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID int64) (string, error)

	// ValidateToken checks a token string and returns the user it was
	// issued for.
	ValidateToken(tokenString string) (int64, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
