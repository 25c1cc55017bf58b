package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
)

type ProductCreateInput struct {
	Name        string `validate:"required,notblank,max=150"`
	Description string `validate:"max=2000"`
	Price       int64  `validate:"gte=0"`
	Stock       int32  `validate:"gte=0"`
}

func (s *Usecase) ProductCreate(ctx context.Context, in ProductCreateInput) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductCreate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	p, err := s.repoDB.CreateProduct(ctx, entity.NewProduct{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create product", "name", in.Name, "by_user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "product created", "product_id", p.ID, "by_user_id", clm.UserID)
	return p, nil
}
