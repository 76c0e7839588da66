package handlers

import (
	"errors"
	"net/http"

	"parkwise/models"
	"parkwise/services/user"
	"parkwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the login flow over HTTP.
type AuthHandler struct {
	Service user.Service
}

// NewAuthHandler builds a handler around the given auth service.
func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// Login handles POST /auth/login. Unknown emails are registered on the fly.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		getLogger(c).Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed, please try again")
		return
	}

	c.JSON(http.StatusOK, resp)
}
