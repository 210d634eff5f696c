package models

import (
	"time"
)

// 配送状态枚举 - 与Next.js版本Delivery模型的status字段完全匹配
const (
	DeliveryStatusPending    = "pending"    // 待配送
	DeliveryStatusDispatched = "dispatched" // 已派单
	DeliveryStatusInTransit  = "in_transit" // 运输中
	DeliveryStatusDelivered  = "delivered"  // 已送达
	DeliveryStatusFailed     = "failed"     // 配送失败
)

// Delivery 配送单模型 - 订单履约状态的影子记录，承运商跟踪字段独立于订单
type Delivery struct {
	ID             uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID        string     `gorm:"column:order_id;size:20;not null;uniqueIndex" json:"order_id"`
	Status         string     `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	ExpressCompany string     `gorm:"column:express_company;size:50" json:"express_company"`
	ExpressNumber  string     `gorm:"column:express_number;size:50" json:"express_number"`
	DispatchedTime *time.Time `gorm:"column:dispatched_time;type:datetime" json:"dispatched_time"`
	DeliveredTime  *time.Time `gorm:"column:delivered_time;type:datetime" json:"delivered_time"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Delivery) TableName() string {
	return "deliveries"
}

// DeriveDeliveryStatus 根据订单状态推导配送状态
// 订单状态是唯一数据源，配送状态在每次订单状态变更时重新推导，避免两边不一致
func DeriveDeliveryStatus(orderStatus string) string {
	switch orderStatus {
	case OrderStatusShipped:
		return DeliveryStatusInTransit
	case OrderStatusDelivered:
		return DeliveryStatusDelivered
	case OrderStatusCancelled:
		return DeliveryStatusFailed
	case OrderStatusReadyForPickup:
		return DeliveryStatusDispatched
	default:
		return DeliveryStatusPending
	}
}
