package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name        string         `gorm:"type:varchar(200);not null;index" json:"name"`              // 商品名称
	Category    string         `gorm:"type:varchar(60);index" json:"category"`                    // 商品分类
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 价格金额
	ImageURL    string         `gorm:"type:varchar(500)" json:"image_url"`                        // 商品图片
	Description string         `gorm:"type:text" json:"description"`                              // 商品描述
	IsActive    bool           `gorm:"index" json:"is_active"`                                    // 是否上架（不设列默认值，gorm 建档时显式写入 false）
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
