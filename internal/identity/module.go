package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/pedidos/internal/identity/inbound"
	"github.com/shandysiswandi/pedidos/internal/identity/outbound/db"
	"github.com/shandysiswandi/pedidos/internal/identity/usecase"
	"github.com/shandysiswandi/pedidos/internal/pkg/config"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
	"github.com/shandysiswandi/pedidos/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.DBConn, dep.Instrument),
		Validator:  dep.Validator,
		Config:     dep.Config,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
