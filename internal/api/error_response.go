package api

// ErrorResponse 全域錯誤響應模型
// The "error" key is part of the wire contract; message text may vary,
// the key and the status code may not.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// error 錯誤描述
	Error string `json:"error"`
}

// MessageResponse confirms a mutation that returns no entity (delete).
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Product deleted"`
}
