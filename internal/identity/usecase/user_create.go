package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
)

type UserCreateInput struct {
	Name     string `validate:"required,notblank,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,notblank,max=255"`
}

// UserCreate registers a new account. It is open to anonymous callers.
func (s *Usecase) UserCreate(ctx context.Context, in UserCreateInput) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "UserCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.CreateUser(ctx, entity.NewUser{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "user email already registered", "email", in.Email)
		return nil, goerror.NewBusiness("user with that email already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return user, nil
}
