package pgsql

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: goerror.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: goerror.ErrNotFound},
		{name: "unique", in: &pgconn.PgError{Code: "23505"}, want: goerror.ErrConflict},
		{name: "foreign key", in: &pgconn.PgError{Code: "23503"}, want: goerror.ErrReference},
		{name: "other pg error", in: &pgconn.PgError{Code: "23514"}, want: nil},
		{name: "other", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in)
			if tt.name == "other pg error" {
				var pgErr *pgconn.PgError
				assert.ErrorAs(t, got, &pgErr)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConstraintName(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "orders_product_id_fkey"}

	assert.Equal(t, "orders_product_id_fkey", ConstraintName(fk))
	assert.Equal(t, "orders_product_id_fkey", ConstraintName(fmt.Errorf("insert: %w", fk)))
	assert.Empty(t, ConstraintName(pgx.ErrNoRows))
	assert.Empty(t, ConstraintName(nil))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(0), Offset(0, 10))
	assert.Equal(t, int64(0), Offset(-5, 10))
	assert.Equal(t, int64(0), Offset(1, 10))
	assert.Equal(t, int64(20), Offset(3, 10))
	assert.Equal(t, int64(214748364600), Offset(math.MaxInt32, MaxPageSize))
	assert.Positive(t, Offset(math.MaxInt32, MaxPageSize))
}

func TestPageSize(t *testing.T) {
	assert.Equal(t, int32(DefaultPageSize), PageSize(0))
	assert.Equal(t, int32(DefaultPageSize), PageSize(-3))
	assert.Equal(t, int32(25), PageSize(25))
	assert.Equal(t, int32(MaxPageSize), PageSize(MaxPageSize))
	assert.Equal(t, int32(DefaultPageSize), PageSize(MaxPageSize+1))
}
