package api

// All fields optional; only those present in the JSON are applied.
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1" example:"Alice"`
	Email    *string `json:"email" validate:"omitempty,min=3" example:"alice@example.com"`
	Password *string `json:"password" example:"NewSecret456!"`
}
