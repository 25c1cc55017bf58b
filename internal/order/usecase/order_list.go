package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql"
)

type OrderListInput struct {
	Mine bool // only the caller's orders
	Page int32
	Size int32
}

type OrderListOutput struct {
	Page   int32
	Size   int32
	Total  int64
	Orders []entity.Order
}

func (s *Usecase) OrderList(ctx context.Context, in OrderListInput) (*OrderListOutput, error) {
	ctx, span := s.startSpan(ctx, "OrderList")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	size := pgsql.PageSize(in.Size)
	page := max(in.Page, 1)

	filter := entity.OrderListFilter{Limit: size, Offset: pgsql.Offset(page, size)}
	if in.Mine {
		filter.UserID = &clm.UserID
	}

	orders, total, err := s.repoDB.ListOrders(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list orders", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OrderListOutput{Page: page, Size: size, Total: total, Orders: orders}, nil
}
