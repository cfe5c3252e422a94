package service

import "errors"

// 服务层统一错误定义
var (
	ErrInvalidEmail              = errors.New("invalid email")
	ErrEmailTaken                = errors.New("email already registered")
	ErrWeakPassword              = errors.New("password too weak")
	ErrInvalidCredentials        = errors.New("invalid email or password")
	ErrUserNotFound              = errors.New("user not found")
	ErrProductNotFound           = errors.New("product not found")
	ErrProductInvalid            = errors.New("product invalid")
	ErrCartEmpty                 = errors.New("cart is empty")
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderStatusInvalid        = errors.New("order status invalid")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)
