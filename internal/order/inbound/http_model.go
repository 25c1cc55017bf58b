package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/pedidos/internal/order/entity"
)

const headerIdempotencyKey = "Idempotency-Key"

type OrderCreateRequest struct {
	ProductID int64 `json:"product_id" example:"1"`
	Quantity  int32 `json:"quantity" example:"2"`
}

type OrderUpdateRequest struct {
	Quantity *int32  `json:"quantity"`
	Status   *string `json:"status" enums:"pending,paid,shipped,cancelled"`
}

type OrderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toOrderResponse(o entity.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Status:    o.Status.String(),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type OrderCreateResponse struct {
	Order OrderResponse `json:"order"`
}

func (OrderCreateResponse) StatusCode() int { return http.StatusCreated }

func (OrderCreateResponse) Message() string { return "order created" }

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r OrdersResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}
