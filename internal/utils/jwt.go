package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenHasNoExpiry is returned by [TokenExpiresAt] when the token carries
// no exp claim.
var ErrTokenHasNoExpiry = errors.New("token has no expiry")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the subject the token is issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// A negative tokenDuration yields an already expired token. Returns an error
// if issuer or signKey is empty, or tokenDuration is zero.
func GenerateJWTToken(issuer, subject string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenString, nil
}

// TokenExpiresAt reads the exp claim of a bearer token without verifying
// its signature. The client never holds the signing key; it only needs to
// know whether sending the token is pointless.
//
// Returns [ErrTokenHasNoExpiry] for tokens without exp, or a parse error
// when tokenString is not a JWT.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrTokenHasNoExpiry
	}

	return exp.Time, nil
}
