package db

import (
	"context"

	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn pgsql.Querier
	ins  instrument.Instrumentation
}

func NewDB(conn pgsql.Querier, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, ins: ins}
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.outbound.db").Start(ctx, name)
}
