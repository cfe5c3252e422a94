package repository

import (
	"errors"
	"strings"

	"github.com/ikay-store/api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByOrderNoAndUser(orderNo string, userID uint) (*models.Order, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string) error
	Count() (int64, error)
	SumTotalAmount() (models.Money, error)
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create 在同一事务中创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNoAndUser 根据订单号获取用户自己的订单
func (r *GormOrderRepository) GetByOrderNoAndUser(orderNo string, userID uint) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Items").Where("order_no = ? AND user_id = ?", strings.TrimSpace(orderNo), userID)
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser 用户订单列表
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", filter.UserID)
	return r.list(query, filter)
}

// ListAdmin 后台订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	return r.list(query, filter)
}

func (r *GormOrderRepository) list(query *gorm.DB, filter OrderListFilter) ([]models.Order, int64, error) {
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error
}

// Count 订单总数
func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalAmount 订单总销售额
func (r *GormOrderRepository) SumTotalAmount() (models.Money, error) {
	var row struct {
		Total models.Money
	}
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status <> ?", "canceled").
		Scan(&row).Error
	if err != nil {
		return models.Money{}, err
	}
	return row.Total, nil
}
