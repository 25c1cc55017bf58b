// Package pgsql holds the pieces every Postgres repository shares: the query
// surface, driver error mapping and span bookkeeping.
package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SQLSTATE codes mapped to domain sentinels.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Querier is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// MapError translates driver errors into goerror sentinels:
//   - pgx.ErrNoRows → goerror.ErrNotFound
//   - 23505 unique_violation → goerror.ErrConflict
//   - 23503 foreign_key_violation → goerror.ErrReference
//
// Anything else is returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return goerror.ErrConflict
		case codeForeignKeyViolation:
			return goerror.ErrReference
		}
	}

	return err
}

// EndSpan closes span, recording err unless it is an expected domain outcome.
func EndSpan(span trace.Span, err error) {
	if err != nil &&
		!errors.Is(err, goerror.ErrNotFound) &&
		!errors.Is(err, goerror.ErrConflict) &&
		!errors.Is(err, goerror.ErrReference) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ConstraintName returns the constraint a driver error names, or "" when err
// is not a Postgres constraint error.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// Page size bounds shared by list endpoints.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageSize falls back to DefaultPageSize when size is unset or above MaxPageSize.
func PageSize(size int32) int32 {
	if size <= 0 || size > MaxPageSize {
		return DefaultPageSize
	}
	return size
}

// Offset converts a 1-based page into a row offset. It is computed in int64
// so the largest page times MaxPageSize still fits.
func Offset(page, size int32) int64 {
	return int64(max(page, 1)-1) * int64(size)
}
