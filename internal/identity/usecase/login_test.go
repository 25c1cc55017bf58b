package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		in       LoginInput
		wantTTL  time.Duration
		wantCode *goerror.Code
		wantMsg  string
	}{
		{
			name:    "default validity is sixty minutes",
			in:      LoginInput{Email: "a@b.com", Password: "x"},
			wantTTL: time.Hour,
		},
		{
			name:    "explicit validity",
			in:      LoginInput{Email: "a@b.com", Password: "x", Validity: ptr[int64](15)},
			wantTTL: 15 * time.Minute,
		},
		{
			name:     "wrong password",
			in:       LoginInput{Email: "a@b.com", Password: "y"},
			wantCode: ptr(goerror.CodeUnauthorized),
			wantMsg:  "Invalid email or password",
		},
		{
			name:     "unknown email",
			in:       LoginInput{Email: "nobody@b.com", Password: "x"},
			wantCode: ptr(goerror.CodeUnauthorized),
			wantMsg:  "Invalid email or password",
		},
		{
			name:     "password compared exactly",
			in:       LoginInput{Email: "a@b.com", Password: "x "},
			wantCode: ptr(goerror.CodeUnauthorized),
			wantMsg:  "Invalid email or password",
		},
		{
			name:     "missing email",
			in:       LoginInput{Password: "x"},
			wantCode: ptr(goerror.CodeInvalidInput),
			wantMsg:  "Validation error",
		},
		{
			name:     "non positive validity",
			in:       LoginInput{Email: "a@b.com", Password: "x", Validity: ptr[int64](0)},
			wantCode: ptr(goerror.CodeInvalidInput),
			wantMsg:  "Validation error",
		},
		{
			name:     "validity above configured maximum",
			in:       LoginInput{Email: "a@b.com", Password: "x", Validity: ptr[int64](10_000)},
			wantCode: ptr(goerror.CodeInvalidInput),
			wantMsg:  "Validation error",
		},
		{
			name:     "validity wrapping to a short duration",
			in:       LoginInput{Email: "a@b.com", Password: "x", Validity: ptr[int64](307445735)},
			wantCode: ptr(goerror.CodeInvalidInput),
			wantMsg:  "Validation error",
		},
		{
			name:     "validity wrapping to a negative duration",
			in:       LoginInput{Email: "a@b.com", Password: "x", Validity: ptr[int64](153722868)},
			wantCode: ptr(goerror.CodeInvalidInput),
			wantMsg:  "Validation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "jwt:\n  default_ttl_minutes: 60\n  max_ttl_minutes: 1440\n")

			out, err := f.uc.Login(context.Background(), tt.in)
			if tt.wantCode != nil {
				assert.Nil(t, out)
				requireCode(t, err, *tt.wantCode)
				var gerr *goerror.Error
				require.ErrorAs(t, err, &gerr)
				assert.Equal(t, tt.wantMsg, gerr.Msg())
				return
			}

			require.NoError(t, err)
			claims, err := f.jwt.Verify(out.Token)
			require.NoError(t, err)

			assert.Equal(t, int64(1), claims.UserID)
			assert.Equal(t, "A", claims.Name)
			assert.Equal(t, "a@b.com", claims.Email)
			assert.Equal(t, testNow.Add(tt.wantTTL).Unix(), claims.ExpiresAt.Unix())
			assert.Equal(t, testNow.Unix(), claims.IssuedAt.Unix())
		})
	}
}

func TestLogin_DefaultWithoutConfig(t *testing.T) {
	f := newFixture(t, "app:\n  name: pedidos\n")

	out, err := f.uc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	claims, err := f.jwt.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(3600*time.Second).Unix(), claims.ExpiresAt.Unix())
}

func TestLogin_ValidityBeyondDurationRange(t *testing.T) {
	f := newFixture(t, "app:\n  name: pedidos\n")

	for _, v := range []int64{153722868, 307445735, math.MaxInt64} {
		out, err := f.uc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x", Validity: ptr(v)})
		assert.Nil(t, out)
		requireCode(t, err, goerror.CodeInvalidInput)
	}
	assert.Zero(t, f.repo.lookups)

	out, err := f.uc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x", Validity: ptr[int64](10_000)})
	require.NoError(t, err)
	claims, err := f.jwt.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(10_000*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestLogin_StoreFailure(t *testing.T) {
	f := newFixture(t, "app:\n  name: pedidos\n")
	f.repo.err = errDB

	out, err := f.uc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x"})
	assert.Nil(t, out)
	requireCode(t, err, goerror.CodeInternal)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "Internal server error", gerr.Msg())
	assert.NotContains(t, gerr.Msg(), "connection refused")
}

func TestLogin_ValidationSkipsStore(t *testing.T) {
	f := newFixture(t, "app:\n  name: pedidos\n")

	_, err := f.uc.Login(context.Background(), LoginInput{Email: "a@b.com"})
	requireCode(t, err, goerror.CodeInvalidInput)
	assert.Zero(t, f.repo.lookups)
}

func TestLogin_TokenExpiresAfterValidity(t *testing.T) {
	f := newFixture(t, "app:\n  name: pedidos\n")

	out, err := f.uc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x", Validity: ptr[int64](1)})
	require.NoError(t, err)

	f.clock.Advance(59 * time.Second)
	_, err = f.jwt.Verify(out.Token)
	require.NoError(t, err)

	f.clock.Advance(2 * time.Second)
	_, err = f.jwt.Verify(out.Token)
	assert.Error(t, err)
}
