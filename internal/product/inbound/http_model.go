package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/pedidos/internal/product/entity"
)

type ProductCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price" example:"2590"`
	Stock       int32  `json:"stock" example:"10"`
}

type ProductUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Stock       *int32  `json:"stock"`
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Stock       int32     `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type ProductCreateResponse struct {
	Product ProductResponse `json:"product"`
}

func (ProductCreateResponse) StatusCode() int { return http.StatusCreated }

func (ProductCreateResponse) Message() string { return "product created" }

type ProductsResponse struct {
	Products []ProductResponse `json:"products"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r ProductsResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}
