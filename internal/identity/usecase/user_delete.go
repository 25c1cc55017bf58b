package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
)

type UserDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) UserDelete(ctx context.Context, in UserDeleteInput) error {
	ctx, span := s.startSpan(ctx, "UserDelete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.DeleteUser(ctx, in.ID)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		return goerror.NewNotFound("user not found")
	case errors.Is(err, goerror.ErrReference):
		slog.WarnContext(ctx, "user still has orders", "user_id", in.ID)
		return goerror.NewBusiness("user still has orders", goerror.CodeConflict)
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo delete user", "user_id", in.ID, "by_user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", in.ID, "by_user_id", clm.UserID)
	return nil
}
