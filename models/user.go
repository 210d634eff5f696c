package models

import (
	"time"
)

// 用户角色枚举 - buyer端、卖家端、管理后台共用一张用户表
const (
	RoleCustomer = "customer" // 买家
	RoleSeller   = "seller"   // 卖家
	RoleAdmin    = "admin"    // 管理员
)

// User 用户模型 - 与Next.js版本User模型完全匹配
type User struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nickname  string    `gorm:"column:nickname;size:100;not null" json:"nickname"`
	Mobile    string    `gorm:"column:mobile;size:15;not null;index" json:"mobile"`
	Email     string    `gorm:"column:email;size:100" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"` // bcrypt哈希，不对外返回
	Role      string    `gorm:"column:role;size:20;not null;default:'customer'" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}
