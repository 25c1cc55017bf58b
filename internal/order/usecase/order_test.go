package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreate(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		in       OrderCreateInput
		repoErr  error
		wantCode *goerror.Code
	}{
		{name: "ok", ctx: authCtx(5), in: OrderCreateInput{ProductID: 2, Quantity: 3}},
		{name: "anonymous", ctx: context.Background(), in: OrderCreateInput{ProductID: 2, Quantity: 3}, wantCode: ptr(goerror.CodeUnauthorized)},
		{name: "zero quantity", ctx: authCtx(5), in: OrderCreateInput{ProductID: 2}, wantCode: ptr(goerror.CodeInvalidInput)},
		{name: "missing product", ctx: authCtx(5), in: OrderCreateInput{Quantity: 1}, wantCode: ptr(goerror.CodeInvalidInput)},
		{name: "unknown product", ctx: authCtx(5), in: OrderCreateInput{ProductID: 99, Quantity: 1}, repoErr: goerror.ErrReference, wantCode: ptr(goerror.CodeNotFound)},
		{name: "product deleted", ctx: authCtx(5), in: OrderCreateInput{ProductID: 2, Quantity: 1}, repoErr: entity.ErrOrderProductMissing, wantCode: ptr(goerror.CodeNotFound)},
		{name: "caller deleted after login", ctx: authCtx(5), in: OrderCreateInput{ProductID: 2, Quantity: 1}, repoErr: entity.ErrOrderUserMissing, wantCode: ptr(goerror.CodeUnauthorized)},
		{name: "store failure", ctx: authCtx(5), in: OrderCreateInput{ProductID: 2, Quantity: 1}, repoErr: errDB, wantCode: ptr(goerror.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.repoErr != nil {
				f.repo.createFn = func(entity.NewOrder) (*entity.Order, error) { return nil, tt.repoErr }
			}

			o, err := f.uc.OrderCreate(tt.ctx, tt.in)
			if tt.wantCode != nil {
				requireCode(t, err, *tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), o.UserID)
			assert.Equal(t, entity.StatusPending, o.Status)
		})
	}
}

func TestOrderCreate_IdempotencyKey(t *testing.T) {
	f := newFixture(t)
	in := OrderCreateInput{ProductID: 2, Quantity: 1, IdempotencyKey: "k-1"}

	_, err := f.uc.OrderCreate(authCtx(5), in)
	require.NoError(t, err)

	_, err = f.uc.OrderCreate(authCtx(5), in)
	requireCode(t, err, goerror.CodeConflict)
	assert.Equal(t, 1, f.repo.creates)

	// the same key from another caller is a different operation
	_, err = f.uc.OrderCreate(authCtx(6), in)
	require.NoError(t, err)
	assert.Equal(t, 2, f.repo.creates)

	assert.Equal(t, time.Minute, f.mr.TTL("test:order:5:k-1"))
}

func TestOrderCreate_IdempotencyKey_InProgress(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.mr.Set("test:order:5:k-2", "in_progress"))

	_, err := f.uc.OrderCreate(authCtx(5), OrderCreateInput{ProductID: 2, Quantity: 1, IdempotencyKey: "k-2"})
	requireCode(t, err, goerror.CodeConflict)
	assert.Zero(t, f.repo.creates)
}

func TestOrderCreate_IdempotencyKey_FailureAllowsRetry(t *testing.T) {
	f := newFixture(t)
	f.repo.createFn = func(entity.NewOrder) (*entity.Order, error) { return nil, goerror.ErrReference }
	in := OrderCreateInput{ProductID: 99, Quantity: 1, IdempotencyKey: "k-3"}

	_, err := f.uc.OrderCreate(authCtx(5), in)
	requireCode(t, err, goerror.CodeNotFound)
	assert.False(t, f.mr.Exists("test:order:5:k-3"))

	f.repo.createFn = func(in entity.NewOrder) (*entity.Order, error) {
		return &entity.Order{ID: 12, UserID: in.UserID, ProductID: in.ProductID, Quantity: in.Quantity}, nil
	}
	o, err := f.uc.OrderCreate(authCtx(5), in)
	require.NoError(t, err)
	assert.Equal(t, int64(12), o.ID)
}

func TestOrderCreate_IdempotencyStoreDown(t *testing.T) {
	f := newFixture(t)
	f.mr.Close()

	_, err := f.uc.OrderCreate(authCtx(5), OrderCreateInput{ProductID: 2, Quantity: 1, IdempotencyKey: "k-4"})
	requireCode(t, err, goerror.CodeUnavailable)
	assert.Zero(t, f.repo.creates)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, http.StatusServiceUnavailable, gerr.StatusCode())
}

func TestOrderCreate_IdempotencyKey_LockedWhileRunning(t *testing.T) {
	f := newFixture(t)

	var lockTTL time.Duration
	f.repo.createFn = func(in entity.NewOrder) (*entity.Order, error) {
		lockTTL = f.mr.TTL("test:order:5:k-5")
		return &entity.Order{ID: 13, UserID: in.UserID, ProductID: in.ProductID, Quantity: in.Quantity}, nil
	}

	_, err := f.uc.OrderCreate(authCtx(5), OrderCreateInput{ProductID: 2, Quantity: 1, IdempotencyKey: "k-5"})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, lockTTL)
	assert.Equal(t, time.Minute, f.mr.TTL("test:order:5:k-5"))
}

func TestOrderCreate_IdempotencyKey_CompletionLost(t *testing.T) {
	f := newFixture(t)
	f.repo.createFn = func(in entity.NewOrder) (*entity.Order, error) {
		f.mr.Close()
		return &entity.Order{ID: 14, UserID: in.UserID, ProductID: in.ProductID, Quantity: in.Quantity}, nil
	}

	o, err := f.uc.OrderCreate(authCtx(5), OrderCreateInput{ProductID: 2, Quantity: 1, IdempotencyKey: "k-6"})
	require.NoError(t, err)
	assert.Equal(t, int64(14), o.ID)
	assert.Equal(t, 1, f.repo.creates)
}

func TestOrderList(t *testing.T) {
	f := newFixture(t)

	var got entity.OrderListFilter
	f.repo.listFn = func(flt entity.OrderListFilter) ([]entity.Order, int64, error) {
		got = flt
		return []entity.Order{{ID: 1}}, 1, nil
	}

	_, err := f.uc.OrderList(context.Background(), OrderListInput{})
	requireCode(t, err, goerror.CodeUnauthorized)

	out, err := f.uc.OrderList(authCtx(5), OrderListInput{Page: 2, Size: 20})
	require.NoError(t, err)
	assert.Nil(t, got.UserID)
	assert.Equal(t, int64(20), got.Offset)
	assert.Equal(t, int64(1), out.Total)

	_, err = f.uc.OrderList(authCtx(5), OrderListInput{Mine: true})
	require.NoError(t, err)
	require.NotNil(t, got.UserID)
	assert.Equal(t, int64(5), *got.UserID)

	f.repo.listFn = func(entity.OrderListFilter) ([]entity.Order, int64, error) { return nil, 0, errDB }
	_, err = f.uc.OrderList(authCtx(5), OrderListInput{})
	requireCode(t, err, goerror.CodeInternal)
}

func TestOrderUpdate(t *testing.T) {
	tests := []struct {
		name     string
		in       OrderUpdateInput
		repoErr  error
		wantCode *goerror.Code
	}{
		{name: "status", in: OrderUpdateInput{ID: 3, Status: ptr("paid")}},
		{name: "quantity", in: OrderUpdateInput{ID: 3, Quantity: ptr(int32(4))}},
		{name: "unknown status", in: OrderUpdateInput{ID: 3, Status: ptr("lost")}, wantCode: ptr(goerror.CodeInvalidInput)},
		{name: "zero quantity", in: OrderUpdateInput{ID: 3, Quantity: ptr(int32(0))}, wantCode: ptr(goerror.CodeInvalidInput)},
		{name: "empty patch", in: OrderUpdateInput{ID: 3}, wantCode: ptr(goerror.CodeInvalidInput)},
		{name: "unknown order", in: OrderUpdateInput{ID: 3, Status: ptr("paid")}, repoErr: goerror.ErrNotFound, wantCode: ptr(goerror.CodeNotFound)},
		{name: "store failure", in: OrderUpdateInput{ID: 3, Status: ptr("paid")}, repoErr: errDB, wantCode: ptr(goerror.CodeInternal)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.patchFn = func(in entity.PatchOrder) (*entity.Order, error) {
				if tt.repoErr != nil {
					return nil, tt.repoErr
				}
				o := &entity.Order{ID: in.ID, Quantity: 1, Status: entity.StatusPending}
				if in.Status != nil {
					o.Status = *in.Status
				}
				return o, nil
			}

			o, err := f.uc.OrderUpdate(authCtx(5), tt.in)
			if tt.wantCode != nil {
				requireCode(t, err, *tt.wantCode)
				return
			}
			require.NoError(t, err)
			if tt.in.Status != nil {
				assert.Equal(t, entity.Status(*tt.in.Status), o.Status)
			}
		})
	}
}

func TestOrderDelete(t *testing.T) {
	f := newFixture(t)

	f.repo.deleteFn = func(int64) error { return nil }
	assert.NoError(t, f.uc.OrderDelete(authCtx(5), OrderDeleteInput{ID: 3}))

	requireCode(t, f.uc.OrderDelete(context.Background(), OrderDeleteInput{ID: 3}), goerror.CodeUnauthorized)

	f.repo.deleteFn = func(int64) error { return goerror.ErrNotFound }
	requireCode(t, f.uc.OrderDelete(authCtx(5), OrderDeleteInput{ID: 3}), goerror.CodeNotFound)

	f.repo.deleteFn = func(int64) error { return errDB }
	requireCode(t, f.uc.OrderDelete(authCtx(5), OrderDeleteInput{ID: 3}), goerror.CodeInternal)
}
