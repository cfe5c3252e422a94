package constants

// 订单状态常量
const (
	OrderStatusPlaced    = "placed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// 用户角色常量
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// 币种常量
// 定价固定为印度卢比，展示时不保留小数位。
const (
	CurrencyINR = "INR"
)

// 商品分类常量
var ProductCategories = []string{
	"T-Shirts",
	"Shirts",
	"Hoodies",
	"Trousers",
	"Jeans",
}

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型常量
const (
	TaskOrderConfirmationEmail = "email:order_confirmation"
)

// 缓存键常量
const (
	CacheKeyProductList = "products:list"
)
