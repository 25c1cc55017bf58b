package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql"
)

const userColumns = "id, name, email, password, created_at, updated_at"

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindUserByCredentials matches email and password exactly as stored.
func (s *DB) FindUserByCredentials(ctx context.Context, email, password string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "FindUserByCredentials")
	defer func() { pgsql.EndSpan(span, err) }()

	user, err := scanUser(s.conn.QueryRow(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1 AND password = $2 LIMIT 1",
		email, password,
	))
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return user, nil
}

func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { pgsql.EndSpan(span, err) }()

	user, err := scanUser(s.conn.QueryRow(ctx,
		"INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING "+userColumns,
		in.Name, in.Email, in.Password,
	))
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return user, nil
}

func (s *DB) ListUsers(ctx context.Context, f entity.UserListFilter) (_ []entity.User, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListUsers")
	defer func() { pgsql.EndSpan(span, err) }()

	rows, err := s.conn.Query(ctx, `
		SELECT `+userColumns+`, COUNT(*) OVER () AS total
		FROM users
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2 OFFSET $3`,
		f.Search, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	var total int64
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.User, error) {
		var u entity.User
		err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt, &total)
		return u, err
	})
	if err != nil {
		return nil, 0, pgsql.MapError(err)
	}

	if len(users) == 0 && f.Offset > 0 {
		err = s.conn.QueryRow(ctx,
			"SELECT COUNT(*) FROM users WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%'",
			f.Search,
		).Scan(&total)
		if err != nil {
			return nil, 0, pgsql.MapError(err)
		}
	}

	return users, total, nil
}

func (s *DB) PatchUser(ctx context.Context, in entity.PatchUser) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "PatchUser")
	defer func() { pgsql.EndSpan(span, err) }()

	user, err := scanUser(s.conn.QueryRow(ctx, `
		UPDATE users SET
			name = COALESCE($2, name),
			email = COALESCE($3, email),
			password = COALESCE($4, password),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns,
		in.ID, in.Name, in.Email, in.Password,
	))
	if err != nil {
		return nil, pgsql.MapError(err)
	}

	return user, nil
}

func (s *DB) DeleteUser(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteUser")
	defer func() { pgsql.EndSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return pgsql.MapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
