package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
	"github.com/shandysiswandi/pedidos/internal/product/entity"
	"github.com/shandysiswandi/pedidos/internal/product/usecase"
)

type HTTPEndpoint struct {
	uc uc
}

// ProductList returns a page of the catalog.
// @Summary List products
// @Tags Products
// @Produce json
// @Param search query string false "Search by name or description"
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=ProductsResponse} "Product list"
// @Failure 400 {object} router.errorResponse "Invalid query parameters"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/produtos [get]
func (h *HTTPEndpoint) ProductList(r *router.Request) (any, error) {
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.ProductList(r.Context(), usecase.ProductListInput{
		Search: r.GetQuery("search"),
		Page:   page,
		Size:   size,
	})
	if err != nil {
		return nil, err
	}

	return ProductsResponse{
		Products: lo.Map(resp.Products, func(p entity.Product, _ int) ProductResponse { return toProductResponse(p) }),
		total:    resp.Total,
		size:     resp.Size,
		page:     resp.Page,
	}, nil
}

// ProductCreate adds a product to the catalog.
// @Summary Create product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ProductCreateRequest true "Product payload"
// @Success 201 {object} router.successResponse{data=ProductCreateResponse} "Created product"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/produtos [post]
func (h *HTTPEndpoint) ProductCreate(r *router.Request) (any, error) {
	var req ProductCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	p, err := h.uc.ProductCreate(r.Context(), usecase.ProductCreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return nil, err
	}

	return ProductCreateResponse{Product: toProductResponse(*p)}, nil
}

// ProductUpdate partially updates a product.
// @Summary Update product
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body ProductUpdateRequest true "Fields to change"
// @Success 200 {object} router.successResponse{data=ProductResponse} "Updated product"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/produtos/{id} [patch]
func (h *HTTPEndpoint) ProductUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req ProductUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	p, err := h.uc.ProductUpdate(r.Context(), usecase.ProductUpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return nil, err
	}

	return toProductResponse(*p), nil
}

// ProductDelete removes a product.
// @Summary Delete product
// @Tags Products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Failure 409 {object} router.errorResponse "Product still has orders"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/produtos/{id} [delete]
func (h *HTTPEndpoint) ProductDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.ProductDelete(r.Context(), usecase.ProductDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}
