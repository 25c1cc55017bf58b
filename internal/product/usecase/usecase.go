package usecase

import (
	"context"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/validator"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateProduct(ctx context.Context, in entity.NewProduct) (*entity.Product, error)
	ListProducts(ctx context.Context, f entity.ProductListFilter) ([]entity.Product, int64, error)
	PatchProduct(ctx context.Context, in entity.PatchProduct) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("product.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewUnauthorized(jwt.MessageMissingToken)
	}
	return clm, nil
}
