package models

import (
	"time"
)

// Seller 卖家模型 - 卖家入驻信息与打款账户
type Seller struct {
	ID            int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID        int       `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	ShopName      string    `gorm:"column:shop_name;size:100;not null" json:"shop_name"`
	Brand         string    `gorm:"column:brand;size:100" json:"brand"`
	BankName      string    `gorm:"column:bank_name;size:100" json:"bank_name"`
	BankAccount   string    `gorm:"column:bank_account;size:50" json:"bank_account"`
	AccountHolder string    `gorm:"column:account_holder;size:100" json:"account_holder"`
	Status        string    `gorm:"column:status;size:20;not null;default:'active'" json:"status"` // active(正常), suspended(停用)
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Seller) TableName() string {
	return "sellers"
}
