package admin

import (
	"errors"

	handlershared "github.com/ikay-store/api/internal/http/handlers/shared"
	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest 商品创建/更新请求
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Description string          `json:"description"`
	IsActive    *bool           `json:"is_active"`
	SortOrder   int             `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Category:    r.Category,
		PriceAmount: r.Price,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// ListProducts 后台商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	products, total, err := h.ProductService.ListAdmin(c.Query("category"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// GetProduct 后台商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	product, err := h.ProductService.GetAdminByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid product payload", err)
		return
	}
	product, err := h.ProductService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrProductInvalid) {
			respondError(c, response.CodeBadRequest, "invalid product fields", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to create product", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid product payload", err)
		return
	}
	product, err := h.ProductService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrProductInvalid):
			respondError(c, response.CodeBadRequest, "invalid product fields", nil)
		default:
			respondError(c, response.CodeInternal, "failed to update product", err)
		}
		return
	}
	response.Success(c, gin.H{"product": product})
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to delete product", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
