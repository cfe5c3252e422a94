package public

import (
	"errors"
	"strings"

	handlershared "github.com/ikay-store/api/internal/http/handlers/shared"
	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderItemResponse 订单项响应
type OrderItemResponse struct {
	ProductID       string       `json:"product_id"`
	Name            string       `json:"name"`
	Category        string       `json:"category,omitempty"`
	ImageURL        string       `json:"image_url"`
	UnitPrice       models.Money `json:"unit_price"`
	Quantity        int          `json:"quantity"`
	TotalPrice      models.Money `json:"total_price"`
	SubtotalDisplay string       `json:"subtotal_display"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID           uint                `json:"id"`
	OrderNo      string              `json:"order_no"`
	CustomerName string              `json:"customer_name"`
	Status       string              `json:"status"`
	Currency     string              `json:"currency"`
	TotalAmount  models.Money        `json:"total_amount"`
	TotalDisplay string              `json:"total_display"`
	ItemCount    int                 `json:"item_count"`
	CreatedAt    int64               `json:"created_at"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

func toOrderResponse(o models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Category:        item.Category,
			ImageURL:        item.ImageURL,
			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			TotalPrice:      item.TotalPrice,
			SubtotalDisplay: service.FormatINR(item.TotalPrice),
		})
	}
	return OrderResponse{
		ID:           o.ID,
		OrderNo:      o.OrderNo,
		CustomerName: o.CustomerName,
		Status:       o.Status,
		Currency:     o.Currency,
		TotalAmount:  o.TotalAmount,
		TotalDisplay: service.FormatINR(o.TotalAmount),
		ItemCount:    o.ItemCount,
		CreatedAt:    o.CreatedAt.Unix(),
		Items:        items,
	}
}

// Checkout 结算当前购物车
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Checkout(uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			respondError(c, response.CodeBadRequest, "cart is empty", nil)
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, response.CodeUnauthorized, "user not found", nil)
		default:
			respondError(c, response.CodeInternal, "checkout failed", err)
		}
		return
	}
	response.Success(c, gin.H{"order": toOrderResponse(*order)})
}

// ListOrders 当前用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := handlershared.ParsePagination(c)
	status := strings.TrimSpace(c.Query("status"))

	orders, total, err := h.OrderService.ListByUser(uid, status, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load orders", err)
		return
	}
	items := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, toOrderResponse(order))
	}
	response.SuccessWithPage(c, gin.H{"orders": items}, response.NewPagination(page, pageSize, total))
}

// GetOrderByOrderNo 当前用户订单详情
func (h *Handler) GetOrderByOrderNo(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "missing order number", nil)
		return
	}
	order, err := h.OrderService.GetByOrderNo(orderNo, uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "order not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load order", err)
		return
	}
	response.Success(c, gin.H{"order": toOrderResponse(*order)})
}
