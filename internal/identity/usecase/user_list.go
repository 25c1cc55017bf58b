package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/pgsql"
)

type UserListInput struct {
	Search string // value already trimmed
	Page   int32
	Size   int32
}

type UserListOutput struct {
	Page  int32
	Size  int32
	Total int64
	Users []entity.User
}

func (s *Usecase) UserList(ctx context.Context, in UserListInput) (*UserListOutput, error) {
	ctx, span := s.startSpan(ctx, "UserList")
	defer span.End()

	if _, err := s.authenticated(ctx); err != nil {
		return nil, err
	}

	size := pgsql.PageSize(in.Size)
	page := max(in.Page, 1)

	users, total, err := s.repoDB.ListUsers(ctx, entity.UserListFilter{
		Search: in.Search,
		Limit:  size,
		Offset: pgsql.Offset(page, size),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list users", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserListOutput{Page: page, Size: size, Total: total, Users: users}, nil
}
