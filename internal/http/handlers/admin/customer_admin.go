package admin

import (
	handlershared "github.com/ikay-store/api/internal/http/handlers/shared"
	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListCustomers 后台客户列表
func (h *Handler) ListCustomers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	users, total, err := h.UserRepo.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		Role:     c.Query("role"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load customers", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"customers": users}, response.NewPagination(page, pageSize, total))
}
