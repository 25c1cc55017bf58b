package jwt

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned when the token is not signed with HS256.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS256 secret is less than 32 bytes.
	ErrSigningKeyTooShort = errors.New("HS256 signing key must be at least 32 bytes (256 bits)")

	// ErrInvalidTTL is returned when a token is requested with a non-positive lifetime.
	ErrInvalidTTL = errors.New("token ttl must be positive")

	// ErrTokenExpired is returned when the token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// Messages shown to callers when a bearer token is missing or rejected.
const (
	MessageMissingToken = "Access denied. No token received."
	MessageInvalidToken = "Invalid or expired token."
)

// JWT issues and verifies identity tokens.
type JWT interface {
	// Generate signs a token for the identity that expires after ttl.
	Generate(id Identity, ttl time.Duration) (string, error)
	// Verify checks signature and expiry and returns the decoded claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key shared by issuer and verifier.
	Secret []byte
	// Issuer is the token issuer value; empty disables the iss check.
	Issuer string
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Identity is who the token speaks for.
type Identity struct {
	UserID int64
	Name   string
	Email  string
}

// Claims wraps the registered claims with the identity payload.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is the authenticated user identifier.
	UserID int64 `json:"id"`
	// Name is the user display name at login time.
	Name string `json:"name"`
	// Email is the user email at login time.
	Email string `json:"email"`
}

// Identity returns the identity part of the claims.
func (c Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Name: c.Name, Email: c.Email}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	p := strings.Fields(header)
	if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
		return "", false
	}

	return p[1], true
}

// GetAuth returns the JWT claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
