package public

import (
	"errors"
	"strconv"

	handlershared "github.com/ikay-store/api/internal/http/handlers/shared"
	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductResponse 商品响应
type ProductResponse struct {
	ID           uint         `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Price        models.Money `json:"price"`
	PriceDisplay string       `json:"price_display"`
	ImageURL     string       `json:"image_url"`
	Description  string       `json:"description,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.PriceAmount,
		PriceDisplay: service.FormatINR(p.PriceAmount),
		ImageURL:     p.ImageURL,
		Description:  p.Description,
	}
}

// GetProducts 商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	category := c.Query("category")
	search := c.Query("search")

	products, total, err := h.ProductService.ListPublic(c.Request.Context(), category, search, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "failed to load products", err)
		return
	}

	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	response.SuccessWithPage(c, gin.H{"products": items}, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	product, err := h.ProductService.GetPublicByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "failed to load product", err)
		return
	}
	response.Success(c, gin.H{"product": toProductResponse(*product)})
}

// GetCategories 商品分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, gin.H{"categories": h.ProductService.Categories()})
}
