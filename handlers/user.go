package handlers

import (
	"errors"
	"net/http"

	"ecoskip/middleware"
	"ecoskip/models"
	"ecoskip/services/user"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(s user.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	switch {
	case errors.Is(err, user.ErrUserExists):
		utils.JSONError(c, http.StatusBadRequest, "User already exists", "")
		return
	case errors.Is(err, user.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	case err != nil:
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid credentials", "")
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		getLogger(c).Info("Login rejected")
		utils.JSONError(c, http.StatusBadRequest, "Invalid credentials", "")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// MeHandler handles GET /api/auth/me.
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	u, err := h.Service.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, user.ErrUserNotFound) {
		getLogger(c).Warn("Token refers to a missing user", zap.String("userId", userID))
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u.Public()})
}
