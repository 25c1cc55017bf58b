package inbound

import (
	"context"

	"github.com/shandysiswandi/pedidos/internal/pkg/router"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
	"github.com/shandysiswandi/pedidos/internal/product/usecase"
)

type uc interface {
	ProductList(ctx context.Context, in usecase.ProductListInput) (*usecase.ProductListOutput, error)
	ProductCreate(ctx context.Context, in usecase.ProductCreateInput) (*entity.Product, error)
	ProductUpdate(ctx context.Context, in usecase.ProductUpdateInput) (*entity.Product, error)
	ProductDelete(ctx context.Context, in usecase.ProductDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/produtos", end.ProductList) // public catalog
	r.POST("/api/produtos", end.ProductCreate)
	r.PATCH("/api/produtos/:id", end.ProductUpdate)
	r.DELETE("/api/produtos/:id", end.ProductDelete)
}
