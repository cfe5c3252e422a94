package repository

import (
	"errors"
	"strings"

	"github.com/ikay-store/api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	Count() (int64, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("sort_order DESC, created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 删除商品（软删除）
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// Count 商品总数
func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
