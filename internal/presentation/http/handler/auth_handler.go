package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/temple-billing/internal/application/service"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/request"
	"github.com/sangkips/temple-billing/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login credentials"
// @Success 200 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("X-Session-Token", output.Token)
	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":       output.User.ID,
			"username": output.User.Username,
			"role":     output.User.Role,
		},
		"access_token": output.Token,
		"token_type":   "Bearer",
		"expires_in":   int(output.ExpiresIn.Seconds()),
	})
}

// Logout is stateless; the client discards its token
// @Summary Logout
// @Tags auth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.Header("X-Session-Token", "")
	response.OK(c, "Logged out", nil)
}

// GetProfile returns the signed-in user
// @Summary Profile
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.authService.GetCurrentUser(c.Request.Context(), GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile retrieved successfully", user)
}
