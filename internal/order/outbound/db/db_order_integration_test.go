//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql/pgsqltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Orders(t *testing.T) {
	pool := pgsqltest.New(t)
	repo := NewDB(pool, instrument.NewNoop())
	ctx := context.Background()

	pgsqltest.Truncate(t, pool)

	var ana, bruno, productID int64
	require.NoError(t, pool.QueryRow(ctx, "INSERT INTO users (name, email, password) VALUES ('Ana', 'ana@x.com', 'p') RETURNING id").Scan(&ana))
	require.NoError(t, pool.QueryRow(ctx, "INSERT INTO users (name, email, password) VALUES ('Bruno', 'bruno@x.com', 'p') RETURNING id").Scan(&bruno))
	require.NoError(t, pool.QueryRow(ctx, "INSERT INTO products (name, price) VALUES ('Café', 2590) RETURNING id").Scan(&productID))

	o, err := repo.CreateOrder(ctx, entity.NewOrder{UserID: ana, ProductID: productID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, o.Status)

	_, err = repo.CreateOrder(ctx, entity.NewOrder{UserID: bruno, ProductID: productID, Quantity: 1})
	require.NoError(t, err)

	_, err = repo.CreateOrder(ctx, entity.NewOrder{UserID: ana, ProductID: productID + 100, Quantity: 1})
	assert.ErrorIs(t, err, goerror.ErrReference)
	assert.ErrorIs(t, err, entity.ErrOrderProductMissing)

	_, err = repo.CreateOrder(ctx, entity.NewOrder{UserID: bruno + 100, ProductID: productID, Quantity: 1})
	assert.ErrorIs(t, err, entity.ErrOrderUserMissing)

	all, total, err := repo.ListOrders(ctx, entity.OrderListFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	mine, total, err := repo.ListOrders(ctx, entity.OrderListFilter{UserID: &ana, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, mine, 1)
	assert.Equal(t, o.ID, mine[0].ID)

	paid := entity.StatusPaid
	patched, err := repo.PatchOrder(ctx, entity.PatchOrder{ID: o.ID, Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, patched.Status)
	assert.Equal(t, int32(2), patched.Quantity)

	require.NoError(t, repo.DeleteOrder(ctx, o.ID))
	assert.ErrorIs(t, repo.DeleteOrder(ctx, o.ID), goerror.ErrNotFound)
}
