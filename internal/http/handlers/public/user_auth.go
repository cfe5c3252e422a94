package public

import (
	"errors"
	"time"

	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse 用户响应
type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Address:  u.Address,
		Role:     u.Role,
	}
}

func authPayload(user *models.User, token string, expiresAt time.Time) gin.H {
	return gin.H{
		"user":       toUserResponse(user),
		"token":      token,
		"expires_at": expiresAt.Unix(),
	}
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid register payload", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Register(req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "invalid email address", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, "password must be at least 8 characters", nil)
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, response.CodeBadRequest, "email already registered", nil)
		default:
			respondError(c, response.CodeInternal, "registration failed", err)
		}
		return
	}
	response.Success(c, authPayload(user, token, expiresAt))
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid login payload", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "invalid email or password", nil)
			return
		}
		respondError(c, response.CodeInternal, "login failed", err)
		return
	}
	response.Success(c, authPayload(user, token, expiresAt))
}
