package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name  *string `json:"name" validate:"required" example:"Alice"`
	Email *string `json:"email" validate:"required" example:"alice@example.com"`
	// Password is optional; when present it is stored as a bcrypt hash.
	Password string `json:"password" example:"Secret123!"`
}
