package usecase

import (
	"context"

	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/config"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	FindUserByCredentials(ctx context.Context, email, password string) (*entity.User, error)
	CreateUser(ctx context.Context, in entity.NewUser) (*entity.User, error)
	ListUsers(ctx context.Context, f entity.UserListFilter) ([]entity.User, int64, error)
	PatchUser(ctx context.Context, in entity.PatchUser) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

// authenticated returns the verified identity placed in ctx by the router.
func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewUnauthorized(jwt.MessageMissingToken)
	}
	return clm, nil
}
