package main

import (
	"github.com/ikay-store/api/internal/config"
	"github.com/ikay-store/api/internal/logger"
	"github.com/ikay-store/api/internal/models"

	"github.com/shopspring/decimal"
)

// 初始商品目录（IKAY 街头服饰系列）
func seedProducts() []models.Product {
	newMoney := func(amount int64) models.Money {
		return models.NewMoneyFromDecimal(decimal.NewFromInt(amount))
	}
	return []models.Product{
		{Name: "Essential White Linen Shirt", Category: "Shirts", PriceAmount: newMoney(1899), ImageURL: "/images/shirt.png", IsActive: true, SortOrder: 80},
		{Name: "Premium Urban Hoodie", Category: "Hoodies", PriceAmount: newMoney(2499), ImageURL: "/images/hoodies.png", IsActive: true, SortOrder: 70},
		{Name: "Cargo Relaxed Trousers", Category: "Trousers", PriceAmount: newMoney(2199), ImageURL: "/images/trousers.png", IsActive: true, SortOrder: 60},
		{Name: "Classic Street Tee", Category: "T-Shirts", PriceAmount: newMoney(1299), ImageURL: "/images/tshirts.png", IsActive: true, SortOrder: 50},
		{Name: "Minimalist Cotton Shirt", Category: "Shirts", PriceAmount: newMoney(1699), ImageURL: "/images/shirt.png", IsActive: true, SortOrder: 40},
		{Name: "Oversized Street Hoodie", Category: "Hoodies", PriceAmount: newMoney(2699), ImageURL: "/images/hoodies.png", IsActive: true, SortOrder: 30},
		{Name: "Modern Slim Trousers", Category: "Trousers", PriceAmount: newMoney(1999), ImageURL: "/images/trousers.png", IsActive: true, SortOrder: 20},
		{Name: "Signature Logo Tee", Category: "T-Shirts", PriceAmount: newMoney(1499), ImageURL: "/images/tshirts.png", IsActive: true, SortOrder: 10},
	}
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品（按名称去重，可重复执行）
	for _, product := range seedProducts() {
		var existing models.Product
		if err := models.DB.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	stdLog.Printf("Seed finished")
}
