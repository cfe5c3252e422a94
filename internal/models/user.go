package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（顾客与管理员共用，按 role 区分）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                          // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`             // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                             // 密码哈希（不返回给前端）
	FullName     string         `gorm:"type:varchar(120);default:''" json:"full_name"` // 姓名
	Phone        string         `gorm:"type:varchar(30);default:''" json:"phone"`      // 电话
	Address      string         `gorm:"type:text" json:"address"`                      // 收货地址
	Role         string         `gorm:"type:varchar(20);default:'user';index" json:"role"` // 角色（admin/user）
	LastLoginAt  *time.Time     `json:"last_login_at"`                                 // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                       // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 判断是否管理员
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
