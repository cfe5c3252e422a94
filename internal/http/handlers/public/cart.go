package public

import (
	"strings"

	"github.com/ikay-store/api/internal/cart"
	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CartLineResponse 购物车行项目响应
type CartLineResponse struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Price           models.Money `json:"price"`
	PriceDisplay    string       `json:"price_display"`
	ImageURL        string       `json:"image_url"`
	Quantity        int          `json:"quantity"`
	Category        string       `json:"category,omitempty"`
	Subtotal        models.Money `json:"subtotal"`
	SubtotalDisplay string       `json:"subtotal_display"`
}

// CartResponse 购物车响应
// count 与 total 为派生值，每次从行项目重新计算。
type CartResponse struct {
	Items        []CartLineResponse `json:"items"`
	Count        int                `json:"count"`
	Total        models.Money       `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

func toCartResponse(snapshot cart.Snapshot) CartResponse {
	items := make([]CartLineResponse, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		subtotal := item.Subtotal()
		items = append(items, CartLineResponse{
			ID:              item.ID,
			Name:            item.Name,
			Price:           item.Price,
			PriceDisplay:    service.FormatINR(item.Price),
			ImageURL:        item.ImageURL,
			Quantity:        item.Quantity,
			Category:        item.Category,
			Subtotal:        subtotal,
			SubtotalDisplay: service.FormatINR(subtotal),
		})
	}
	return CartResponse{
		Items:        items,
		Count:        snapshot.Count,
		Total:        snapshot.Total,
		TotalDisplay: service.FormatINR(snapshot.Total),
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, gin.H{"cart": toCartResponse(h.CartStore.Snapshot())})
}

// AddToCart 把商品加入购物车
// 同 ID 商品重复加入时数量 +1，价格保留首次归一化结果。
func (h *Handler) AddToCart(c *gin.Context) {
	var product cart.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondError(c, response.CodeBadRequest, "invalid cart item", err)
		return
	}
	if strings.TrimSpace(product.ID.String()) == "" {
		respondError(c, response.CodeBadRequest, "missing product id", nil)
		return
	}
	h.CartStore.Add(product)
	response.Success(c, gin.H{"cart": toCartResponse(h.CartStore.Snapshot())})
}

// CartQuantityRequest 数量变更请求
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetCartQuantity 设置购物车行项目数量
// 小于 1 的数量整体拒绝，行项目保持原样。
func (h *Handler) SetCartQuantity(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, response.CodeBadRequest, "missing product id", nil)
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid quantity payload", err)
		return
	}
	if req.Quantity < 1 {
		respondError(c, response.CodeBadRequest, "quantity must be at least 1", nil)
		return
	}
	h.CartStore.SetQuantity(id, req.Quantity)
	response.Success(c, gin.H{"cart": toCartResponse(h.CartStore.Snapshot())})
}

// RemoveFromCart 删除购物车行项目
// ID 不存在时不报错，返回当前购物车。
func (h *Handler) RemoveFromCart(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, response.CodeBadRequest, "missing product id", nil)
		return
	}
	h.CartStore.Remove(id)
	response.Success(c, gin.H{"cart": toCartResponse(h.CartStore.Snapshot())})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	h.CartStore.Clear()
	response.Success(c, gin.H{"cart": toCartResponse(h.CartStore.Snapshot())})
}

// GetCartSummary 获取购物车角标摘要
func (h *Handler) GetCartSummary(c *gin.Context) {
	snapshot := h.CartStore.Snapshot()
	response.Success(c, gin.H{
		"count":         snapshot.Count,
		"total":         snapshot.Total,
		"total_display": service.FormatINR(snapshot.Total),
	})
}
