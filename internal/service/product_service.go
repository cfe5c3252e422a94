package service

import (
	"context"
	"strings"
	"time"

	"github.com/ikay-store/api/internal/cache"
	"github.com/ikay-store/api/internal/constants"
	"github.com/ikay-store/api/internal/logger"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/repository"

	"github.com/shopspring/decimal"
)

const productListCacheTTL = 5 * time.Minute

// listCache 商品列表缓存访问接口
type listCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// sharedListCache 默认缓存实现，走全局 Redis 客户端
type sharedListCache struct{}

func (sharedListCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	return cache.GetJSON(ctx, key, dest)
}

func (sharedListCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return cache.SetJSON(ctx, key, value, ttl)
}

func (sharedListCache) Del(ctx context.Context, key string) error {
	return cache.Del(ctx, key)
}

// productListCacheEntry 首页商品列表缓存载荷
// 列表与总数一起缓存：缓存的只是第一页，总数必须是查询时的真实总数。
type productListCacheEntry struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
}

// ProductService 商品业务服务
type ProductService struct {
	repo  repository.ProductRepository
	cache listCache
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo, cache: sharedListCache{}}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Name        string
	Category    string
	PriceAmount decimal.Decimal
	ImageURL    string
	Description string
	IsActive    *bool
	SortOrder   int
}

// ListPublic 获取公开商品列表（只含上架商品）
// 无筛选条件的首页列表走 Redis 读穿缓存，未启用缓存时直接查库。
func (s *ProductService) ListPublic(ctx context.Context, category, search string, page, pageSize int) ([]models.Product, int64, error) {
	category = strings.TrimSpace(category)
	search = strings.TrimSpace(search)
	cacheable := category == "" && search == "" && page <= 1

	if cacheable {
		var entry productListCacheEntry
		hit, err := s.cache.GetJSON(ctx, constants.CacheKeyProductList, &entry)
		if err != nil {
			logger.Warnw("product_list_cache_read_failed", "error", err)
		}
		if hit {
			return entry.Products, entry.Total, nil
		}
	}

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   category,
		Search:     search,
		OnlyActive: true,
	}
	products, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		entry := productListCacheEntry{Products: products, Total: total}
		if err := s.cache.SetJSON(ctx, constants.CacheKeyProductList, entry, productListCacheTTL); err != nil {
			logger.Warnw("product_list_cache_write_failed", "error", err)
		}
	}
	return products, total, nil
}

// GetPublicByID 获取公开商品详情
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Categories 返回可用商品分类
func (s *ProductService) Categories() []string {
	out := make([]string, len(constants.ProductCategories))
	copy(out, constants.ProductCategories)
	return out
}

// ListAdmin 获取后台商品列表（含下架商品）
func (s *ProductService) ListAdmin(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   strings.TrimSpace(category),
		Search:     strings.TrimSpace(search),
		OnlyActive: false,
	}
	return s.repo.List(filter)
}

// GetAdminByID 获取后台商品详情
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductInvalid
	}
	price := input.PriceAmount.Round(2)
	if price.IsNegative() {
		return nil, ErrProductInvalid
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	product := &models.Product{
		Name:        name,
		Category:    strings.TrimSpace(input.Category),
		PriceAmount: models.NewMoneyFromDecimal(price),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Description: input.Description,
		IsActive:    isActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(ctx context.Context, id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProductInvalid
	}
	price := input.PriceAmount.Round(2)
	if price.IsNegative() {
		return nil, ErrProductInvalid
	}

	product.Name = name
	product.Category = strings.TrimSpace(input.Category)
	product.PriceAmount = models.NewMoneyFromDecimal(price)
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	product.Description = input.Description
	product.SortOrder = input.SortOrder
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.invalidateListCache(ctx)
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *ProductService) invalidateListCache(ctx context.Context) {
	if err := s.cache.Del(ctx, constants.CacheKeyProductList); err != nil {
		logger.Warnw("product_list_cache_invalidate_failed", "error", err)
	}
}
