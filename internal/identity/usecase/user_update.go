package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
)

type UserUpdateInput struct {
	ID       int64   `validate:"required,gt=0"`
	Name     *string `validate:"omitempty,notblank,max=100"`
	Email    *string `validate:"omitempty,email,max=255"`
	Password *string `validate:"omitempty,notblank,max=255"`
}

// UserUpdate applies a partial update. Any authenticated caller may update any user.
func (s *Usecase) UserUpdate(ctx context.Context, in UserUpdateInput) (*entity.User, error) {
	ctx, span := s.startSpan(ctx, "UserUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	for _, v := range []*string{in.Name, in.Email} {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if in.Name == nil && in.Email == nil && in.Password == nil {
		return nil, goerror.NewInvalidInput(nil, "body", "at least one field must be provided")
	}

	user, err := s.repoDB.PatchUser(ctx, entity.PatchUser{
		ID:       in.ID,
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewNotFound("user not found")
	}
	if errors.Is(err, goerror.ErrConflict) {
		slog.WarnContext(ctx, "user email already registered", "user_id", in.ID)
		return nil, goerror.NewBusiness("user with that email already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo patch user", "user_id", in.ID, "by_user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return user, nil
}
