package usecase

import (
	"context"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/config"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/idempotency"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateOrder(ctx context.Context, in entity.NewOrder) (*entity.Order, error)
	ListOrders(ctx context.Context, f entity.OrderListFilter) ([]entity.Order, int64, error)
	PatchOrder(ctx context.Context, in entity.PatchOrder) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB      repoDB
	idempotency idempotency.Idempotency
	validator   validator.Validator
	cfg         config.Config
	ins         instrument.Instrumentation
}

type Dependency struct {
	RepoDB      repoDB
	Idempotency idempotency.Idempotency
	Validator   validator.Validator
	Config      config.Config
	Instrument  instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:      dep.RepoDB,
		idempotency: dep.Idempotency,
		validator:   dep.Validator,
		cfg:         dep.Config,
		ins:         dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewUnauthorized(jwt.MessageMissingToken)
	}
	return clm, nil
}
