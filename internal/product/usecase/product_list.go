package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
)

type ProductListInput struct {
	Search string
	Page   int32
	Size   int32
}

type ProductListOutput struct {
	Page     int32
	Size     int32
	Total    int64
	Products []entity.Product
}

// ProductList is the catalog view and needs no identity.
func (s *Usecase) ProductList(ctx context.Context, in ProductListInput) (*ProductListOutput, error) {
	ctx, span := s.startSpan(ctx, "ProductList")
	defer span.End()

	size := pgsql.PageSize(in.Size)
	page := max(in.Page, 1)

	products, total, err := s.repoDB.ListProducts(ctx, entity.ProductListFilter{
		Search: strings.TrimSpace(in.Search),
		Limit:  size,
		Offset: pgsql.Offset(page, size),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list products", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProductListOutput{Page: page, Size: size, Total: total, Products: products}, nil
}
