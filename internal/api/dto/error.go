package dto

// Error is the uniform error body returned by all handlers.
type Error struct {
	Error string `json:"error" example:"Record not found"`
}
