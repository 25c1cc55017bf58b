package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/pedidos/internal/identity"
	"github.com/shandysiswandi/pedidos/internal/order"
	"github.com/shandysiswandi/pedidos/internal/product"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.product.enabled") {
		if err := product.New(product.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module product", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.order.enabled") {
		if err := order.New(order.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Idempotency: a.idemp,
			Config:      a.config,
			Instrument:  a.ins,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module order", "error", err)
			os.Exit(1)
		}
	}
}
