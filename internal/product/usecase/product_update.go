package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
)

type ProductUpdateInput struct {
	ID          int64   `validate:"required,gt=0"`
	Name        *string `validate:"omitempty,notblank,max=150"`
	Description *string `validate:"omitempty,max=2000"`
	Price       *int64  `validate:"omitempty,gte=0"`
	Stock       *int32  `validate:"omitempty,gte=0"`
}

func (s *Usecase) ProductUpdate(ctx context.Context, in ProductUpdateInput) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductUpdate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	for _, v := range []*string{in.Name, in.Description} {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if in.Name == nil && in.Description == nil && in.Price == nil && in.Stock == nil {
		return nil, goerror.NewInvalidInput(nil, "body", "at least one field must be provided")
	}

	p, err := s.repoDB.PatchProduct(ctx, entity.PatchProduct{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewNotFound("product not found")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo patch product", "product_id", in.ID, "by_user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return p, nil
}
