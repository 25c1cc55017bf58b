//go:build integration

package db

import (
	"context"
	"testing"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql/pgsqltest"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Products(t *testing.T) {
	pool := pgsqltest.New(t)
	repo := NewDB(pool, instrument.NewNoop())
	ctx := context.Background()

	pgsqltest.Truncate(t, pool)

	p, err := repo.CreateProduct(ctx, entity.NewProduct{Name: "Café", Description: "torra média", Price: 2590, Stock: 5})
	require.NoError(t, err)
	_, err = repo.CreateProduct(ctx, entity.NewProduct{Name: "Chá", Price: 900})
	require.NoError(t, err)

	list, total, err := repo.ListProducts(ctx, entity.ProductListFilter{Search: "média", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)

	stock := int32(0)
	patched, err := repo.PatchProduct(ctx, entity.PatchProduct{ID: p.ID, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, int32(0), patched.Stock)
	assert.Equal(t, int64(2590), patched.Price)

	var userID int64
	require.NoError(t, pool.QueryRow(ctx,
		"INSERT INTO users (name, email, password) VALUES ('A', 'a@x.com', 'p') RETURNING id").Scan(&userID))
	_, err = pool.Exec(ctx, "INSERT INTO orders (user_id, product_id, quantity) VALUES ($1, $2, 1)", userID, p.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, repo.DeleteProduct(ctx, p.ID), goerror.ErrReference)
	assert.ErrorIs(t, repo.DeleteProduct(ctx, p.ID+100), goerror.ErrNotFound)
}
