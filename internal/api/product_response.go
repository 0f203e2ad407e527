package api

import (
	"time"

	"shoplite/internal/model"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	ID          int       `json:"id" example:"1"`
	Name        string    `json:"name" example:"Widget"`
	Description string    `json:"description" example:"A very useful widget"`
	Price       float64   `json:"price" example:"9.99"`
	Stock       int       `json:"stock" example:"5"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductMutationResponse wraps a created/updated product with the
// confirmation message older clients key on.
// swagger:model api.ProductMutationResponse
type ProductMutationResponse struct {
	Message string          `json:"message" example:"Product created"`
	Product ProductResponse `json:"product"`
}

func NewProductResponse(p *model.Product) ProductResponse {
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

func NewProductListResponse(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
