package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/pedidos/internal/pkg/clock"
	"github.com/shandysiswandi/pedidos/internal/pkg/config"
	"github.com/shandysiswandi/pedidos/internal/pkg/idempotency"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
	"github.com/shandysiswandi/pedidos/internal/pkg/uid"
	"github.com/shandysiswandi/pedidos/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
