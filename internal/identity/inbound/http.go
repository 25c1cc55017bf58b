package inbound

import (
	"context"

	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/identity/usecase"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Introspect(ctx context.Context, in usecase.IntrospectInput) (*jwt.Claims, error)

	UserList(ctx context.Context, in usecase.UserListInput) (*usecase.UserListOutput, error)
	UserCreate(ctx context.Context, in usecase.UserCreateInput) (*entity.User, error)
	UserUpdate(ctx context.Context, in usecase.UserUpdateInput) (*entity.User, error)
	UserDelete(ctx context.Context, in usecase.UserDeleteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Authentication
	r.POST("/api/login", end.Login)
	r.GET("/api/validacao", end.Introspect) // checks its own bearer token

	// Users
	r.GET("/api/usuarios", end.UserList)
	r.POST("/api/usuarios", end.UserCreate) // public registration
	r.PATCH("/api/usuarios/:id", end.UserUpdate)
	r.DELETE("/api/usuarios/:id", end.UserDelete)
}
