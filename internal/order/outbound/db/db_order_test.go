package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
)

func TestMapCreateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "user fk", in: &pgconn.PgError{Code: "23503", ConstraintName: constraintOrderUser}, want: entity.ErrOrderUserMissing},
		{name: "product fk", in: &pgconn.PgError{Code: "23503", ConstraintName: constraintOrderProduct}, want: entity.ErrOrderProductMissing},
		{name: "wrapped product fk", in: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: constraintOrderProduct}), want: entity.ErrOrderProductMissing},
		{name: "unnamed fk", in: &pgconn.PgError{Code: "23503"}, want: goerror.ErrReference},
		{name: "no rows", in: pgx.ErrNoRows, want: goerror.ErrNotFound},
		{name: "other", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapCreateError(tt.in))
		})
	}
}

func TestOrderMissingErrorsWrapReference(t *testing.T) {
	assert.ErrorIs(t, entity.ErrOrderUserMissing, goerror.ErrReference)
	assert.ErrorIs(t, entity.ErrOrderProductMissing, goerror.ErrReference)
}
