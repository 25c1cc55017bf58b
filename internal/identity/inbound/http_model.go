package inbound

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
)

var errInvalidMinutes = errors.New("validity must be a whole number of minutes")

// Minutes accepts either a JSON number or a numeric string, e.g. 30 or "30".
type Minutes struct {
	value int64
	set   bool
}

func (m *Minutes) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = Minutes{}
		return nil
	}

	raw := string(b)
	if unq, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unq)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return errInvalidMinutes
	}

	*m = Minutes{value: v, set: true}
	return nil
}

// Int64 returns nil when the field was absent or null.
func (m Minutes) Int64() *int64 {
	if !m.set {
		return nil
	}
	v := m.value
	return &v
}

type LoginRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Validity Minutes `json:"validity" swaggertype:"integer" example:"60"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type IntrospectResponse struct {
	Message jwt.Claims `json:"message"`
}

type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UserCreateResponse struct {
	User UserResponse `json:"user"`
}

func (UserCreateResponse) StatusCode() int { return http.StatusCreated }

func (UserCreateResponse) Message() string { return "user created" }

type UsersResponse struct {
	Users []UserResponse `json:"users"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r UsersResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}
