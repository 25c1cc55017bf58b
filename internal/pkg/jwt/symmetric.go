package jwt

import (
	"errors"
	"strconv"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

const minSecretLen = 32

// Symmetric implements JWT signing and verification using an HMAC secret.
type Symmetric struct {
	secret []byte
	issuer string
	clock  clocker
	uuid   generator
}

// NewHS256 constructs a Symmetric JWT implementation using HS256.
func NewHS256(cfg Config) (*Symmetric, error) {
	if len(cfg.Secret) < minSecretLen {
		return nil, ErrSigningKeyTooShort
	}

	return &Symmetric{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		clock:  cfg.Clock,
		uuid:   cfg.UUID,
	}, nil
}

// Generate creates a signed JWT for the identity.
func (s *Symmetric) Generate(id Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	now := s.clock.Now()

	return libJWT.
		NewWithClaims(libJWT.SigningMethodHS256, Claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				ID:        s.uuid.Generate(),
				Subject:   strconv.FormatInt(id.UserID, 10),
				Issuer:    s.issuer,
				IssuedAt:  libJWT.NewNumericDate(now),
				ExpiresAt: libJWT.NewNumericDate(now.Add(ttl)),
			},
			UserID: id.UserID,
			Name:   id.Name,
			Email:  id.Email,
		}).
		SignedString(s.secret)
}

// Verify parses and validates a JWT string against the current clock.
func (s *Symmetric) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	token, err := libJWT.ParseWithClaims(tokenStr, &claims,
		func(t *libJWT.Token) (any, error) {
			if t.Method != libJWT.SigningMethodHS256 {
				return nil, ErrInvalidSigningMethod
			}
			return s.secret, nil
		},
		libJWT.WithIssuer(s.issuer),
		libJWT.WithValidMethods([]string{libJWT.SigningMethodHS256.Alg()}),
		libJWT.WithIssuedAt(),
		libJWT.WithExpirationRequired(),
		libJWT.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, libJWT.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
