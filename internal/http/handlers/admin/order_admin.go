package admin

import (
	"errors"
	"strconv"
	"strings"

	handlershared "github.com/ikay-store/api/internal/http/handlers/shared"
	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders 后台订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	status := strings.TrimSpace(c.Query("status"))
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	orders, total, err := h.OrderService.ListAdmin(uint(userID), status, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.NewPagination(page, pageSize, total))
}

// OrderStatusRequest 订单状态更新请求
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus 更新订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid status payload", err)
		return
	}
	order, err := h.OrderService.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "invalid order status", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update order", err)
		}
		return
	}
	response.Success(c, gin.H{"order": order})
}
