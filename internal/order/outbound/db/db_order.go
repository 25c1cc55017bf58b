package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql"
)

const orderColumns = "id, user_id, product_id, quantity, status, created_at, updated_at"

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

const (
	constraintOrderUser    = "orders_user_id_fkey"
	constraintOrderProduct = "orders_product_id_fkey"
)

// CreateOrder inserts a pending order. A missing user or product surfaces as
// entity.ErrOrderUserMissing or entity.ErrOrderProductMissing.
func (s *DB) CreateOrder(ctx context.Context, in entity.NewOrder) (_ *entity.Order, err error) {
	ctx, span := s.startSpan(ctx, "CreateOrder")
	defer func() { pgsql.EndSpan(span, err) }()

	o, err := scanOrder(s.conn.QueryRow(ctx,
		"INSERT INTO orders (user_id, product_id, quantity, status) VALUES ($1, $2, $3, $4) RETURNING "+orderColumns,
		in.UserID, in.ProductID, in.Quantity, entity.StatusPending,
	))
	if err != nil {
		return nil, mapCreateError(err)
	}

	return o, nil
}

func (s *DB) ListOrders(ctx context.Context, f entity.OrderListFilter) (_ []entity.Order, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListOrders")
	defer func() { pgsql.EndSpan(span, err) }()

	rows, err := s.conn.Query(ctx,
		"SELECT "+orderColumns+", COUNT(*) OVER () FROM orders WHERE $1::BIGINT IS NULL OR user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3",
		f.UserID, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	var total int64
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Order, error) {
		var o entity.Order
		err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.Status, &o.CreatedAt, &o.UpdatedAt, &total)
		return o, err
	})
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	if len(orders) == 0 && f.Offset > 0 {
		err = s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE $1::BIGINT IS NULL OR user_id = $1", f.UserID).Scan(&total)
		if err != nil {
			return nil, 0, pgsql.MapError(err)
		}
	}

	return orders, total, nil
}

func (s *DB) PatchOrder(ctx context.Context, in entity.PatchOrder) (_ *entity.Order, err error) {
	ctx, span := s.startSpan(ctx, "PatchOrder")
	defer func() { pgsql.EndSpan(span, err) }()

	o, err := scanOrder(s.conn.QueryRow(ctx, `
		UPDATE orders SET
			quantity = COALESCE($2, quantity),
			status = COALESCE($3, status),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+orderColumns,
		in.ID, in.Quantity, in.Status,
	))
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return o, nil
}

func (s *DB) DeleteOrder(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteOrder")
	defer func() { pgsql.EndSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func mapCreateError(err error) error {
	mapped := pgsql.MapError(err)
	if !errors.Is(mapped, goerror.ErrReference) {
		return mapped
	}

	switch pgsql.ConstraintName(err) {
	case constraintOrderUser:
		return entity.ErrOrderUserMissing
	case constraintOrderProduct:
		return entity.ErrOrderProductMissing
	}
	return mapped
}
