package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/idempotency"
)

const (
	msgUserGone         = "user account no longer exists"
	msgOrderUnavailable = "order service temporarily unavailable, try again"
)

type OrderCreateInput struct {
	ProductID      int64  `validate:"required,gt=0"`
	Quantity       int32  `validate:"required,gt=0"`
	IdempotencyKey string `validate:"omitempty,max=128"`
}

// OrderCreate places a pending order for the authenticated caller. With an
// idempotency key the insert runs at most once per caller and key.
func (s *Usecase) OrderCreate(ctx context.Context, in OrderCreateInput) (*entity.Order, error) {
	ctx, span := s.startSpan(ctx, "OrderCreate")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	in.IdempotencyKey = strings.TrimSpace(in.IdempotencyKey)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	var order *entity.Order
	create := func(ctx context.Context) error {
		o, err := s.repoDB.CreateOrder(ctx, entity.NewOrder{
			UserID:    clm.UserID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
		})
		if errors.Is(err, entity.ErrOrderUserMissing) {
			slog.WarnContext(ctx, "order rejected for a deleted user", "user_id", clm.UserID)
			return goerror.NewUnauthorized(msgUserGone)
		}
		if errors.Is(err, goerror.ErrReference) {
			return goerror.NewNotFound("product not found")
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo create order", "user_id", clm.UserID, "product_id", in.ProductID, "error", err)
			return goerror.NewServer(err)
		}
		order = o
		return nil
	}

	if in.IdempotencyKey == "" {
		if err := create(ctx); err != nil {
			return nil, err
		}
	} else {
		key := "order:" + strconv.FormatInt(clm.UserID, 10) + ":" + in.IdempotencyKey
		err := s.idempotency.Exec(ctx, key, create,
			idempotency.WithLockDuration(s.cfg.GetSecond("modules.order.idempotency_lock_seconds")),
			idempotency.WithStateTTL(s.cfg.GetSecond("modules.order.idempotency_ttl_seconds")))
		switch {
		case errors.Is(err, idempotency.ErrAlreadyInProgress):
			return nil, goerror.NewBusiness("order with this idempotency key is being processed", goerror.CodeConflict)
		case errors.Is(err, idempotency.ErrAlreadyCompleted):
			return nil, goerror.NewBusiness("order already submitted", goerror.CodeConflict)
		case err != nil:
			var gerr *goerror.Error
			if errors.As(err, &gerr) {
				return nil, err
			}
			if order != nil {
				// inserted, only the completed mark was lost
				slog.WarnContext(ctx, "failed to mark idempotency key completed", "order_id", order.ID, "error", err)
				break
			}
			slog.ErrorContext(ctx, "failed to guard order create", "user_id", clm.UserID, "error", err)
			return nil, goerror.NewBusiness(msgOrderUnavailable, goerror.CodeUnavailable)
		}
	}

	slog.InfoContext(ctx, "order created", "order_id", order.ID, "user_id", clm.UserID, "product_id", order.ProductID)
	return order, nil
}
