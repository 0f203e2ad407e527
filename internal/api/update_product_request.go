package api

// All fields optional; only those present in the JSON are applied.
// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1" example:"Widget"`
	Description *string  `json:"description" example:"A very useful widget"`
	Price       *float64 `json:"price" example:"19.99"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0" example:"7"`
}
