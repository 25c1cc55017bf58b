package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/pedidos/internal/identity/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/clock"
	"github.com/shandysiswandi/pedidos/internal/pkg/config"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

var errDB = errors.New("db: connection refused")

type fakeRepo struct {
	users map[string]entity.User // keyed by email
	err   error

	createFn func(entity.NewUser) (*entity.User, error)
	listFn   func(entity.UserListFilter) ([]entity.User, int64, error)
	patchFn  func(entity.PatchUser) (*entity.User, error)
	deleteFn func(int64) error

	lookups int
}

func (f *fakeRepo) FindUserByCredentials(_ context.Context, email, password string) (*entity.User, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok || u.Password != password {
		return nil, goerror.ErrNotFound
	}
	return &u, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, in entity.NewUser) (*entity.User, error) {
	return f.createFn(in)
}

func (f *fakeRepo) ListUsers(_ context.Context, flt entity.UserListFilter) ([]entity.User, int64, error) {
	return f.listFn(flt)
}

func (f *fakeRepo) PatchUser(_ context.Context, in entity.PatchUser) (*entity.User, error) {
	return f.patchFn(in)
}

func (f *fakeRepo) DeleteUser(_ context.Context, id int64) error {
	return f.deleteFn(id)
}

type staticID string

func (s staticID) Generate() string { return string(s) }

var testNow = time.Unix(1_700_000_000, 0)

type fixture struct {
	uc    *Usecase
	repo  *fakeRepo
	jwt   *jwt.Symmetric
	clock *clock.Frozen
}

func newFixture(t *testing.T, cfgYAML string) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(cfgYAML))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	clk := &clock.Frozen{At: testNow}
	signer, err := jwt.NewHS256(jwt.Config{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
		Issuer: "pedidos",
		Clock:  clk,
		UUID:   staticID("jti"),
	})
	require.NoError(t, err)

	repo := &fakeRepo{users: map[string]entity.User{
		"a@b.com": {ID: 1, Name: "A", Email: "a@b.com", Password: "x"},
	}}

	return &fixture{
		uc: New(Dependency{
			RepoDB:     repo,
			Validator:  v,
			Config:     cfg,
			JWT:        signer,
			Instrument: instrument.NewNoop(),
		}),
		repo:  repo,
		jwt:   signer,
		clock: clk,
	}
}

func authCtx() context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: 1, Name: "A", Email: "a@b.com"})
}

func ptr[T any](v T) *T { return &v }

func requireCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code(), gerr.Msg())
}
