package public

import (
	"errors"

	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 个人资料更新请求
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// GetCurrentUser 获取当前用户资料
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetProfile(uid)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeUnauthorized, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load profile", err)
		return
	}
	response.Success(c, gin.H{"user": toUserResponse(user)})
}

// UpdateUserProfile 更新当前用户资料
func (h *Handler) UpdateUserProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid profile payload", err)
		return
	}
	user, err := h.UserAuthService.UpdateProfile(uid, service.UpdateProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, response.CodeUnauthorized, "user not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to update profile", err)
		return
	}
	response.Success(c, gin.H{"user": toUserResponse(user)})
}
