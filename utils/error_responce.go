package utils

// ErrorResponse is the error body every handler returns
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
