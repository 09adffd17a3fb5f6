package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Check   string `json:"check,omitempty"`
	Delta   string `json:"delta,omitempty"`
	Details string `json:"details,omitempty"`
}
