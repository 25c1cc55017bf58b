package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/config"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/idempotency"
	"github.com/shandysiswandi/pedidos/internal/pkg/instrument"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

var errDB = errors.New("db: connection refused")

type fakeRepo struct {
	createFn func(entity.NewOrder) (*entity.Order, error)
	listFn   func(entity.OrderListFilter) ([]entity.Order, int64, error)
	patchFn  func(entity.PatchOrder) (*entity.Order, error)
	deleteFn func(int64) error

	creates int
}

func (f *fakeRepo) CreateOrder(_ context.Context, in entity.NewOrder) (*entity.Order, error) {
	f.creates++
	return f.createFn(in)
}

func (f *fakeRepo) ListOrders(_ context.Context, flt entity.OrderListFilter) ([]entity.Order, int64, error) {
	return f.listFn(flt)
}

func (f *fakeRepo) PatchOrder(_ context.Context, in entity.PatchOrder) (*entity.Order, error) {
	return f.patchFn(in)
}

func (f *fakeRepo) DeleteOrder(_ context.Context, id int64) error {
	return f.deleteFn(id)
}

type fixture struct {
	uc   *Usecase
	repo *fakeRepo
	mr   *miniredis.Miniredis
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  order:\n    idempotency_lock_seconds: 15\n    idempotency_ttl_seconds: 60\n"))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := &fakeRepo{createFn: func(in entity.NewOrder) (*entity.Order, error) {
		return &entity.Order{ID: 11, UserID: in.UserID, ProductID: in.ProductID, Quantity: in.Quantity, Status: entity.StatusPending}, nil
	}}

	return &fixture{
		uc: New(Dependency{
			RepoDB:      repo,
			Idempotency: idempotency.New(rdb, "test:"),
			Validator:   v,
			Config:      cfg,
			Instrument:  instrument.NewNoop(),
		}),
		repo: repo,
		mr:   mr,
	}
}

func authCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID, Name: "A", Email: "a@b.com"})
}

func ptr[T any](v T) *T { return &v }

func requireCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	require.Equal(t, code, gerr.Code(), gerr.Msg())
}
