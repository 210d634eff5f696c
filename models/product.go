package models

import (
	"time"
)

// 商品上下架状态
const (
	ProductStatusOnline  = "online"  // 已上架
	ProductStatusOffline = "offline" // 已下架
)

// Product 商品模型 - 与Next.js版本Product模型完全匹配
type Product struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID string    `gorm:"column:product_id;size:30;not null;uniqueIndex" json:"product_id"` // 商品编号
	SellerID  int       `gorm:"column:seller_id;index;not null" json:"seller_id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Brand     string    `gorm:"column:brand;size:100;index" json:"brand"`
	Category  string    `gorm:"column:category;size:50;index" json:"category"`
	Price     float64   `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Stock     int       `gorm:"column:stock;not null;default:0" json:"stock"`
	Status    string    `gorm:"column:status;size:20;not null;default:'offline'" json:"status"`
	ImageURL  string    `gorm:"column:image_url;size:255" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Product) TableName() string {
	return "products"
}
