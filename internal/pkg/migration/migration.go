// Package migration applies the embedded schema migrations with goose.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// gooseUp is swapped in tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Up brings db to the latest schema version.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(files)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration: dialect: %w", err)
	}

	if err := gooseUp(ctx, db, dir); err != nil {
		return fmt.Errorf("migration: up: %w", err)
	}
	return nil
}

// UpFromPool runs Up over a database/sql handle borrowed from pool.
func UpFromPool(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return Up(ctx, db)
}
