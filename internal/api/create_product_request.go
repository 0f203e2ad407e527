package api

// Pointer fields distinguish "absent" from zero so required-field
// validation matches the JSON the client actually sent.
// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name        *string  `json:"name" validate:"required" example:"Widget"`
	Description string   `json:"description" example:"A very useful widget"`
	Price       *float64 `json:"price" validate:"required" example:"9.99"`
	Stock       int      `json:"stock" validate:"gte=0" example:"5"`
}
