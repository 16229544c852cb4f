package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Message string `json:"mensagem"`
}

// MessageResponse corpo de sucesso com mensagem humana.
type MessageResponse struct {
	Message string `json:"mensagem"`
}
