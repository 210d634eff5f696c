package models

import (
	"time"
)

// 优惠券类型
const (
	CouponTypeFixed   = "fixed"   // 满减
	CouponTypePercent = "percent" // 折扣
)

// Coupon 优惠券模型
type Coupon struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"column:code;size:30;not null;uniqueIndex" json:"code"`
	Type        string    `gorm:"column:type;size:20;not null" json:"type"`
	Value       float64   `gorm:"column:value;type:decimal(10,2);not null" json:"value"`            // 满减金额或折扣百分比
	MinAmount   float64   `gorm:"column:min_amount;type:decimal(10,2);default:0" json:"min_amount"` // 使用门槛
	ValidFrom   time.Time `gorm:"column:valid_from;type:datetime;not null" json:"valid_from"`
	ValidUntil  time.Time `gorm:"column:valid_until;type:datetime;not null" json:"valid_until"`
	UsageLimit  int       `gorm:"column:usage_limit;default:0" json:"usage_limit"`                  // 0表示不限次数
	UsedCount   int       `gorm:"column:used_count;default:0" json:"used_count"`
	Enabled     bool      `gorm:"column:enabled;default:true" json:"enabled"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Coupon) TableName() string {
	return "coupons"
}

// IsUsable 判断优惠券当前是否可用
func (c *Coupon) IsUsable(orderAmount float64, now time.Time) bool {
	if !c.Enabled {
		return false
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return false
	}
	if c.UsageLimit > 0 && c.UsedCount >= c.UsageLimit {
		return false
	}
	return orderAmount >= c.MinAmount
}
