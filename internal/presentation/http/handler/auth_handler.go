package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mwirigi/salepoint-api/internal/application/service"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/request"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
)

// AuthHandler proxies authentication to the upstream backend
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles forwarding credentials upstream
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", tokens)
}

// Logout tears down the caller's session state
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	h.authService.Logout(c.Request.Context(), *userID)
	response.OK(c, "Logged out", nil)
}
