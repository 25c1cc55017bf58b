package usecase

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	defaultTokenTTL       = 60 * time.Minute
)

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
	// Validity is the token lifetime in minutes; nil means the configured default.
	Validity *int64 `validate:"omitempty,gt=0"`
}

type LoginOutput struct {
	Token string
}

// Login exchanges an email and password for a signed identity token.
// Credentials are compared exactly as stored; the response never says which one was wrong.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ttl, err := s.tokenTTL(in.Validity)
	if err != nil {
		return nil, err
	}

	user, err := s.repoDB.FindUserByCredentials(ctx, in.Email, in.Password)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "login rejected", "email", in.Email)
		return nil, goerror.NewUnauthorized(msgInvalidCredentials)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo find user by credentials", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(jwt.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}, ttl)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{Token: token}, nil
}

func (s *Usecase) tokenTTL(validity *int64) (time.Duration, error) {
	if validity == nil {
		if d := s.cfg.GetMinute("jwt.default_ttl_minutes"); d > 0 {
			return d, nil
		}
		return defaultTokenTTL, nil
	}

	maxMinutes := int64(math.MaxInt64 / int64(time.Minute))
	if limit := s.cfg.GetMinute("jwt.max_ttl_minutes"); limit > 0 {
		maxMinutes = min(maxMinutes, int64(limit/time.Minute))
	}

	// Compared in minutes; the Duration product overflows past maxMinutes.
	if *validity > maxMinutes {
		return 0, goerror.NewInvalidInput(nil,
			"validity", "validity must not exceed "+strconv.FormatInt(maxMinutes, 10)+" minutes")
	}

	return time.Duration(*validity) * time.Minute, nil
}
