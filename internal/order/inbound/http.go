package inbound

import (
	"context"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/order/usecase"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
)

type uc interface {
	OrderList(ctx context.Context, in usecase.OrderListInput) (*usecase.OrderListOutput, error)
	OrderCreate(ctx context.Context, in usecase.OrderCreateInput) (*entity.Order, error)
	OrderUpdate(ctx context.Context, in usecase.OrderUpdateInput) (*entity.Order, error)
	OrderDelete(ctx context.Context, in usecase.OrderDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/pedidos", end.OrderList)
	r.POST("/api/pedidos", end.OrderCreate)
	r.PATCH("/api/pedidos/:id", end.OrderUpdate)
	r.DELETE("/api/pedidos/:id", end.OrderDelete)
}
