package request

// LoginRequest represents a login request forwarded to the upstream backend
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
