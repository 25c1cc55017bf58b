package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
)

type OrderUpdateInput struct {
	ID       int64   `validate:"required,gt=0"`
	Quantity *int32  `validate:"omitempty,gt=0"`
	Status   *string `validate:"omitempty,oneof=pending paid shipped cancelled"`
}

func (s *Usecase) OrderUpdate(ctx context.Context, in OrderUpdateInput) (*entity.Order, error) {
	ctx, span := s.startSpan(ctx, "OrderUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if in.Quantity == nil && in.Status == nil {
		return nil, goerror.NewInvalidInput(nil, "body", "at least one field must be provided")
	}

	patch := entity.PatchOrder{ID: in.ID, Quantity: in.Quantity}
	if in.Status != nil {
		st := entity.Status(*in.Status)
		patch.Status = &st
	}

	o, err := s.repoDB.PatchOrder(ctx, patch)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewNotFound("order not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo patch order", "order_id", in.ID, "by_user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return o, nil
}
