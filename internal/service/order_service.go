package service

import (
	"fmt"
	"strings"

	"github.com/ikay-store/api/internal/cart"
	"github.com/ikay-store/api/internal/constants"
	"github.com/ikay-store/api/internal/logger"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/queue"
	"github.com/ikay-store/api/internal/repository"

	"github.com/google/uuid"
)

// OrderService 订单业务服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	cartStore   *cart.Store
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	cartStore *cart.Store,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		cartStore:   cartStore,
		queueClient: queueClient,
	}
}

// Checkout 把当前购物车结算为订单
// 快照购物车行项目与派生总价入库，成功后清空购物车并推送确认邮件任务。
func (s *OrderService) Checkout(userID uint) (*models.Order, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	snapshot := s.cartStore.Snapshot()
	if len(snapshot.Items) == 0 {
		return nil, ErrCartEmpty
	}

	order := &models.Order{
		OrderNo:      generateOrderNo(),
		UserID:       user.ID,
		CustomerName: user.FullName,
		Status:       constants.OrderStatusPlaced,
		Currency:     constants.CurrencyINR,
		TotalAmount:  snapshot.Total,
		ItemCount:    snapshot.Count,
	}
	items := make([]models.OrderItem, 0, len(snapshot.Items))
	for _, line := range snapshot.Items {
		items = append(items, models.OrderItem{
			ProductID:  line.ID,
			Name:       line.Name,
			Category:   line.Category,
			ImageURL:   line.ImageURL,
			UnitPrice:  line.Price,
			Quantity:   line.Quantity,
			TotalPrice: line.Subtotal(),
		})
	}

	if err := s.orderRepo.Create(order, items); err != nil {
		return nil, err
	}
	order.Items = items

	s.cartStore.Clear()

	if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_confirmation_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}

	logger.Infow("order_placed",
		"order_no", order.OrderNo,
		"user_id", user.ID,
		"item_count", order.ItemCount,
		"total_amount", order.TotalAmount.String(),
	)
	return order, nil
}

// ListByUser 用户订单列表
func (s *OrderService) ListByUser(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   status,
	}
	return s.orderRepo.ListByUser(filter)
}

// GetByOrderNo 获取用户自己的订单详情
func (s *OrderService) GetByOrderNo(orderNo string, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNoAndUser(orderNo, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin 后台订单列表
func (s *OrderService) ListAdmin(userID uint, status string, page, pageSize int) ([]models.Order, int64, error) {
	filter := repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
		Status:   status,
	}
	return s.orderRepo.ListAdmin(filter)
}

// UpdateStatus 后台更新订单状态
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if !validOrderStatus(status) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

func validOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPlaced,
		constants.OrderStatusShipped,
		constants.OrderStatusDelivered,
		constants.OrderStatusCanceled:
		return true
	}
	return false
}

// generateOrderNo 生成订单编号（IK-前缀 + UUID 片段）
func generateOrderNo() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("IK-%s", strings.ToUpper(raw[:12]))
}
