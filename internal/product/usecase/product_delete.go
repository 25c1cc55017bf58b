package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
)

type ProductDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) ProductDelete(ctx context.Context, in ProductDeleteInput) error {
	ctx, span := s.startSpan(ctx, "ProductDelete")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err = s.repoDB.DeleteProduct(ctx, in.ID)
	switch {
	case errors.Is(err, goerror.ErrNotFound):
		return goerror.NewNotFound("product not found")
	case errors.Is(err, goerror.ErrReference):
		slog.WarnContext(ctx, "product still referenced by orders", "product_id", in.ID)
		return goerror.NewBusiness("product still has orders", goerror.CodeConflict)
	case err != nil:
		slog.ErrorContext(ctx, "failed to repo delete product", "product_id", in.ID, "by_user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "product deleted", "product_id", in.ID, "by_user_id", clm.UserID)
	return nil
}
