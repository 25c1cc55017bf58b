package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
)

type OrderDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) OrderDelete(ctx context.Context, in OrderDeleteInput) error {
	ctx, span := s.startSpan(ctx, "OrderDelete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.DeleteOrder(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewNotFound("order not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete order", "order_id", in.ID, "by_user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "order deleted", "order_id", in.ID, "by_user_id", clm.UserID)
	return nil
}
