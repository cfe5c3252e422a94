package provider

import (
	"github.com/ikay-store/api/internal/cache"
	"github.com/ikay-store/api/internal/cart"
	"github.com/ikay-store/api/internal/config"
	"github.com/ikay-store/api/internal/logger"
	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/queue"
	"github.com/ikay-store/api/internal/repository"
	"github.com/ikay-store/api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	CartStore   *cart.Store

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository

	// Services
	UserAuthService  *service.UserAuthService
	ProductService   *service.ProductService
	OrderService     *service.OrderService
	DashboardService *service.DashboardService
	EmailService     *service.EmailService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化购物车
	c.initCartStore()

	// 3. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

// initCartStore 构建购物车
// backend 为 redis 且缓存可用时走 Redis 持久化，否则退回文件持久化。
func (c *Container) initCartStore() {
	var storage cart.Storage
	if c.Config.Cart.Backend == "redis" && cache.Enabled() {
		rs, err := cart.NewRedisStorage(cache.Client(), cache.Prefix())
		if err != nil {
			logger.Warnw("provider_init_cart_storage_failed", "error", err, "backend", "redis")
		} else {
			storage = rs
		}
	}
	if storage == nil {
		fs, err := cart.NewFileStorage(c.Config.Cart.Dir)
		if err != nil {
			logger.Warnw("provider_init_cart_storage_failed", "error", err, "dir", c.Config.Cart.Dir)
		} else {
			storage = fs
		}
	}
	c.CartStore = cart.NewStore(storage)
	c.CartStore.Subscribe(func(snapshot cart.Snapshot) {
		logger.Debugw("cart_changed",
			"lines", len(snapshot.Items),
			"count", snapshot.Count,
			"total", snapshot.Total.String(),
		)
	})
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.UserRepo, c.CartStore, c.QueueClient)
	c.DashboardService = service.NewDashboardService(c.ProductRepo, c.UserRepo, c.OrderRepo)
}
