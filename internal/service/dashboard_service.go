package service

import (
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/repository"
)

// DashboardService 后台总览服务
type DashboardService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
}

// NewDashboardService 创建总览服务
func NewDashboardService(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
	}
}

// DashboardStats 总览统计数据
type DashboardStats struct {
	ProductCount   int64          `json:"product_count"`
	UserCount      int64          `json:"user_count"`
	OrderCount     int64          `json:"order_count"`
	Revenue        models.Money   `json:"revenue"`
	RevenueDisplay string         `json:"revenue_display"`
	RecentOrders   []models.Order `json:"recent_orders"`
}

// Stats 汇总商品数、用户数、订单数、销售额与最近订单
func (s *DashboardService) Stats() (*DashboardStats, error) {
	productCount, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	userCount, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	orderCount, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumTotalAmount()
	if err != nil {
		return nil, err
	}
	recent, _, err := s.orderRepo.ListAdmin(repository.OrderListFilter{Page: 1, PageSize: 5})
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ProductCount:   productCount,
		UserCount:      userCount,
		OrderCount:     orderCount,
		Revenue:        revenue,
		RevenueDisplay: FormatINR(revenue),
		RecentOrders:   recent,
	}, nil
}
