package router

import (
	"fmt"
	"strings"

	"github.com/ikay-store/api/internal/cache"
	"github.com/ikay-store/api/internal/config"
	adminhandlers "github.com/ikay-store/api/internal/http/handlers/admin"
	publichandlers "github.com/ikay-store/api/internal/http/handlers/public"
	"github.com/ikay-store/api/internal/logger"
	"github.com/ikay-store/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ikay"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts, try again later",
	}
	redisClient := cache.Client()

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（商品图片）
	r.Static("/images", "./images")

	api := r.Group("/api")
	{
		// 公开接口
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.GET("/categories", publicHandler.GetCategories)

		// 购物车接口
		// 购物车为站点级共享状态，不要求登录。
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", publicHandler.GetCart)
			cartGroup.GET("/summary", publicHandler.GetCartSummary)
			cartGroup.POST("/items", publicHandler.AddToCart)
			cartGroup.PUT("/items/:id", publicHandler.SetCartQuantity)
			cartGroup.DELETE("/items/:id", publicHandler.RemoveFromCart)
			cartGroup.DELETE("", publicHandler.ClearCart)
		}

		// 用户认证接口
		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 用户接口（需鉴权）
		user := api.Group("")
		user.Use(UserJWTAuthMiddleware(c.UserAuthService))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me/profile", publicHandler.UpdateUserProfile)
			user.POST("/checkout", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:order_no", publicHandler.GetOrderByOrderNo)
		}

		// 管理员接口
		admin := api.Group("/admin")
		admin.Use(UserJWTAuthMiddleware(c.UserAuthService), AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.GET("/products", adminHandler.ListProducts)
			admin.GET("/products/:id", adminHandler.GetProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.GET("/orders", adminHandler.ListOrders)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.GET("/customers", adminHandler.ListCustomers)
			admin.POST("/email/test", adminHandler.SendTestEmail)
		}
	}

	// 健康检查
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
