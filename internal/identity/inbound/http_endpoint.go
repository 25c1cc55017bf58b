package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/identity/usecase"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for authentication and user management.
type HTTPEndpoint struct {
	uc uc
}

// Login authenticates a user and returns a signed token.
// @Summary Authenticate user
// @Description Matches email and password and returns a bearer token valid for `validity` minutes (default 60).
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} LoginResponse "Token"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid email or password"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Validity: req.Validity.Int64(),
	})
	if err != nil {
		return nil, err
	}

	return router.Plain{Body: LoginResponse{Token: resp.Token}}, nil
}

// Introspect returns the claims carried by the caller's bearer token.
// @Summary Introspect token
// @Description Verifies the bearer token and echoes its decoded claims.
// @Tags Identity
// @Security BearerAuth
// @Produce json
// @Success 200 {object} IntrospectResponse "Decoded claims"
// @Failure 401 {object} router.errorResponse "Access denied. No token received."
// @Failure 403 {object} router.errorResponse "Invalid or expired token."
// @Router /api/validacao [get]
func (h *HTTPEndpoint) Introspect(r *router.Request) (any, error) {
	clm, err := h.uc.Introspect(r.Context(), usecase.IntrospectInput{
		Authorization: r.Header.Get("Authorization"),
	})
	if err != nil {
		return nil, err
	}

	return router.Plain{Body: IntrospectResponse{Message: *clm}}, nil
}

// UserList returns a page of users.
// @Summary List users
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name or email"
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=UsersResponse} "User list"
// @Failure 400 {object} router.errorResponse "Invalid query parameters"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/usuarios [get]
func (h *HTTPEndpoint) UserList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserList(r.Context(), usecase.UserListInput{
		Search: r.GetQuery("search"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	return UsersResponse{
		Users: lo.Map(resp.Users, func(u entity.User, _ int) UserResponse { return toUserResponse(u) }),
		total: resp.Total,
		size:  resp.Size,
		page:  resp.Page,
	}, nil
}

// UserCreate registers a user.
// @Summary Register user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserCreateRequest true "User payload"
// @Success 201 {object} router.successResponse{data=UserResponse} "Created user"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/usuarios [post]
func (h *HTTPEndpoint) UserCreate(r *router.Request) (any, error) {
	var req UserCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	user, err := h.uc.UserCreate(r.Context(), usecase.UserCreateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return UserCreateResponse{User: toUserResponse(*user)}, nil
}

// UserUpdate partially updates a user.
// @Summary Update user
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UserUpdateRequest true "Fields to change"
// @Success 200 {object} router.successResponse{data=UserResponse} "Updated user"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/usuarios/{id} [patch]
func (h *HTTPEndpoint) UserUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req UserUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	user, err := h.uc.UserUpdate(r.Context(), usecase.UserUpdateInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return toUserResponse(*user), nil
}

// UserDelete removes a user.
// @Summary Delete user
// @Tags Users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 409 {object} router.errorResponse "User still has orders"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/usuarios/{id} [delete]
func (h *HTTPEndpoint) UserDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.UserDelete(r.Context(), usecase.UserDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}
