package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
)

const (
	productColumns = "id, name, description, price, stock, created_at, updated_at"
	productSearch  = "$1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'"
)

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DB) CreateProduct(ctx context.Context, in entity.NewProduct) (_ *entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "CreateProduct")
	defer func() { pgsql.EndSpan(span, err) }()

	p, err := scanProduct(s.conn.QueryRow(ctx,
		"INSERT INTO products (name, description, price, stock) VALUES ($1, $2, $3, $4) RETURNING "+productColumns,
		in.Name, in.Description, in.Price, in.Stock,
	))
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return p, nil
}

func (s *DB) ListProducts(ctx context.Context, f entity.ProductListFilter) (_ []entity.Product, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListProducts")
	defer func() { pgsql.EndSpan(span, err) }()

	rows, err := s.conn.Query(ctx,
		"SELECT "+productColumns+", COUNT(*) OVER () FROM products WHERE "+productSearch+" ORDER BY id LIMIT $2 OFFSET $3",
		f.Search, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	var total int64
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Product, error) {
		var p entity.Product
		err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt, &total)
		return p, err
	})
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	// a page past the end carries no window count
	if len(products) == 0 && f.Offset > 0 {
		if err = s.conn.QueryRow(ctx, "SELECT COUNT(*) FROM products WHERE "+productSearch, f.Search).Scan(&total); err != nil {
			return nil, 0, pgsql.MapError(err)
		}
	}

	return products, total, nil
}

func (s *DB) PatchProduct(ctx context.Context, in entity.PatchProduct) (_ *entity.Product, err error) {
	ctx, span := s.startSpan(ctx, "PatchProduct")
	defer func() { pgsql.EndSpan(span, err) }()

	p, err := scanProduct(s.conn.QueryRow(ctx, `
		UPDATE products SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			price = COALESCE($4, price),
			stock = COALESCE($5, stock),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+productColumns,
		in.ID, in.Name, in.Description, in.Price, in.Stock,
	))
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return p, nil
}

func (s *DB) DeleteProduct(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteProduct")
	defer func() { pgsql.EndSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
