package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/pedidos/internal/pkg/goerror"
	"github.com/shandysiswandi/pedidos/internal/pkg/jwt"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
	"github.com/shandysiswandi/pedidos/internal/product/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUC struct {
	listIn    usecase.ProductListInput
	createIn  usecase.ProductCreateInput
	updateIn  usecase.ProductUpdateInput
	deleteErr error
}

func (f *fakeUC) ProductList(_ context.Context, in usecase.ProductListInput) (*usecase.ProductListOutput, error) {
	f.listIn = in
	return &usecase.ProductListOutput{
		Page:     1,
		Size:     10,
		Total:    1,
		Products: []entity.Product{{ID: 1, Name: "Café", Price: 2590, Stock: 4}},
	}, nil
}

func (f *fakeUC) ProductCreate(_ context.Context, in usecase.ProductCreateInput) (*entity.Product, error) {
	f.createIn = in
	return &entity.Product{ID: 2, Name: in.Name, Price: in.Price, Stock: in.Stock}, nil
}

func (f *fakeUC) ProductUpdate(_ context.Context, in usecase.ProductUpdateInput) (*entity.Product, error) {
	f.updateIn = in
	return &entity.Product{ID: in.ID, Price: *in.Price}, nil
}

func (f *fakeUC) ProductDelete(context.Context, usecase.ProductDeleteInput) error { return f.deleteErr }

type passJWT struct{}

func (passJWT) Generate(jwt.Identity, time.Duration) (string, error) { return "", nil }

func (passJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{UserID: 1}, nil }

func serve(t *testing.T, uc *fakeUC, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	r := router.NewRouter(router.Config{JWT: passJWT{}})
	RegisterHTTPEndpoint(r, uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func withToken(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer t")
	return req
}

func TestProductList_HTTP_Public(t *testing.T) {
	uc := &fakeUC{}
	rec, body := serve(t, uc, httptest.NewRequest(http.MethodGet, "/api/produtos?search=caf&page=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.ProductListInput{Search: "caf", Page: 3}, uc.listIn)

	products := body["data"].(map[string]any)["products"].([]any)
	require.Len(t, products, 1)
	assert.Equal(t, float64(2590), products[0].(map[string]any)["price"])
}

func TestProductList_HTTP_BadQuery(t *testing.T) {
	rec, _ := serve(t, &fakeUC{}, httptest.NewRequest(http.MethodGet, "/api/produtos?size=ten", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductCreate_HTTP(t *testing.T) {
	body := `{"name":"Café","description":"500g","price":2590,"stock":10}`

	t.Run("requires token", func(t *testing.T) {
		rec, resp := serve(t, &fakeUC{}, httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, jwt.MessageMissingToken, resp["message"])
	})

	t.Run("created", func(t *testing.T) {
		uc := &fakeUC{}
		rec, resp := serve(t, uc, withToken(httptest.NewRequest(http.MethodPost, "/api/produtos", strings.NewReader(body))))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "product created", resp["message"])
		assert.Equal(t, usecase.ProductCreateInput{Name: "Café", Description: "500g", Price: 2590, Stock: 10}, uc.createIn)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec, _ := serve(t, &fakeUC{}, withToken(httptest.NewRequest(http.MethodPost, "/api/produtos",
			strings.NewReader(`{"name":"Café","colour":"red"}`))))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductUpdate_HTTP(t *testing.T) {
	uc := &fakeUC{}
	rec, resp := serve(t, uc, withToken(httptest.NewRequest(http.MethodPatch, "/api/produtos/8", strings.NewReader(`{"price":100}`))))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(8), uc.updateIn.ID)
	assert.Nil(t, uc.updateIn.Name)
	assert.Equal(t, float64(100), resp["data"].(map[string]any)["price"])
}

func TestProductDelete_HTTP(t *testing.T) {
	rec, _ := serve(t, &fakeUC{}, withToken(httptest.NewRequest(http.MethodDelete, "/api/produtos/8", nil)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	uc := &fakeUC{deleteErr: goerror.NewBusiness("product still has orders", goerror.CodeConflict)}
	rec, resp := serve(t, uc, withToken(httptest.NewRequest(http.MethodDelete, "/api/produtos/8", nil)))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "product still has orders", resp["message"])
}
