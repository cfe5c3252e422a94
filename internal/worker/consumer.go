package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ikay-store/api/internal/logger"
	"github.com/ikay-store/api/internal/provider"
	"github.com/ikay-store/api/internal/queue"
	"github.com/ikay-store/api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_confirmation_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	user, err := c.UserRepo.GetByID(order.UserID)
	if err != nil {
		logger.Warnw("worker_order_confirmation_fetch_user_failed", "order_id", order.ID, "user_id", order.UserID, "error", err)
		return err
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		logger.Debugw("worker_order_confirmation_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil || !c.EmailService.Enabled() {
		logger.Debugw("worker_order_confirmation_skip_email_disabled", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}

	input := service.OrderConfirmationEmailInput{
		OrderNo:      order.OrderNo,
		CustomerName: order.CustomerName,
		Items:        order.Items,
		TotalAmount:  order.TotalAmount,
	}
	if err := c.EmailService.SendOrderConfirmationEmail(user.Email, input); err != nil {
		if errors.Is(err, service.ErrEmailServiceDisabled) || errors.Is(err, service.ErrEmailServiceNotConfigured) {
			logger.Debugw("worker_order_confirmation_skip_unconfigured", "order_id", order.ID, "error", err)
			return nil
		}
		logger.Warnw("worker_order_confirmation_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", user.Email,
			"error", err,
		)
		return err
	}
	return nil
}
