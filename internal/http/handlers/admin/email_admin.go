package admin

import (
	"errors"

	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

// TestEmailRequest 测试邮件请求
type TestEmailRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendTestEmail 发送测试邮件，用于验证 SMTP 配置
func (h *Handler) SendTestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid email payload", err)
		return
	}

	if err := h.EmailService.SendCustomEmail(req.To, req.Subject, req.Body); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailServiceDisabled):
			respondError(c, response.CodeBadRequest, "email service is disabled", nil)
		case errors.Is(err, service.ErrEmailServiceNotConfigured):
			respondError(c, response.CodeBadRequest, "email service is not configured", nil)
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "invalid recipient email", nil)
		default:
			respondError(c, response.CodeInternal, "failed to send test email", err)
		}
		return
	}
	response.SuccessWithMsg(c, "test email sent", nil)
}
