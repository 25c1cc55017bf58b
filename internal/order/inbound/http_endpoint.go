package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/pedidos/internal/order/entity"
	"github.com/shandysiswandi/pedidos/internal/order/usecase"
	"github.com/shandysiswandi/pedidos/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// OrderList returns a page of orders.
// @Summary List orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param mine query bool false "Only the caller's orders"
// @Param size query int false "Pagination size"
// @Param page query int false "Pagination page"
// @Success 200 {object} router.successResponse{data=OrdersResponse} "Order list"
// @Failure 400 {object} router.errorResponse "Invalid query parameters"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/pedidos [get]
func (h *HTTPEndpoint) OrderList(r *router.Request) (any, error) {
	mine, err := r.GetQueryBool("mine")
	if err != nil {
		return nil, err
	}

	size, err := r.GetQueryInt32("size")
	if err != nil {
		return nil, err
	}

	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.OrderList(r.Context(), usecase.OrderListInput{Mine: mine, Page: page, Size: size})
	if err != nil {
		return nil, err
	}

	return OrdersResponse{
		Orders: lo.Map(resp.Orders, func(o entity.Order, _ int) OrderResponse { return toOrderResponse(o) }),
		total:  resp.Total,
		size:   resp.Size,
		page:   resp.Page,
	}, nil
}

// OrderCreate places an order for the caller.
// @Summary Create order
// @Description A repeated Idempotency-Key from the same caller is rejected instead of creating a second order.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client generated key"
// @Param request body OrderCreateRequest true "Order payload"
// @Success 201 {object} router.successResponse{data=OrderCreateResponse} "Created order"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Product not found"
// @Failure 409 {object} router.errorResponse "Order already submitted"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/pedidos [post]
func (h *HTTPEndpoint) OrderCreate(r *router.Request) (any, error) {
	var req OrderCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	o, err := h.uc.OrderCreate(r.Context(), usecase.OrderCreateInput{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		IdempotencyKey: r.Header.Get(headerIdempotencyKey),
	})
	if err != nil {
		return nil, err
	}

	return OrderCreateResponse{Order: toOrderResponse(*o)}, nil
}

// OrderUpdate changes quantity or status.
// @Summary Update order
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body OrderUpdateRequest true "Fields to change"
// @Success 200 {object} router.successResponse{data=OrderResponse} "Updated order"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Order not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/pedidos/{id} [patch]
func (h *HTTPEndpoint) OrderUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req OrderUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	o, err := h.uc.OrderUpdate(r.Context(), usecase.OrderUpdateInput{
		ID:       id,
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(*o), nil
}

// OrderDelete removes an order.
// @Summary Delete order
// @Tags Orders
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 401 {object} router.errorResponse "Unauthorized"
// @Failure 403 {object} router.errorResponse "Forbidden"
// @Failure 404 {object} router.errorResponse "Order not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/pedidos/{id} [delete]
func (h *HTTPEndpoint) OrderDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.OrderDelete(r.Context(), usecase.OrderDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return nil, nil
}
