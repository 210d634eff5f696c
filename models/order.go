package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// 订单状态枚举 - 与Next.js版本Order模型的status字段完全匹配
const (
	OrderStatusPending        = "pending"          // 待确认
	OrderStatusConfirmed      = "confirmed"        // 已确认
	OrderStatusProcessing     = "processing"       // 处理中
	OrderStatusReadyForPickup = "ready_for_pickup" // 待揽收
	OrderStatusShipped        = "shipped"          // 已发货
	OrderStatusDelivered      = "delivered"        // 已送达
	OrderStatusCancelled      = "cancelled"        // 已取消
)

// ValidOrderStatuses 所有合法的订单状态
var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:        true,
	OrderStatusConfirmed:      true,
	OrderStatusProcessing:     true,
	OrderStatusReadyForPickup: true,
	OrderStatusShipped:        true,
	OrderStatusDelivered:      true,
	OrderStatusCancelled:      true,
}

// OrderItem 订单商品项 - 每个商品项带有自己的状态和归属卖家
type OrderItem struct {
	ProductID string  `json:"product_id"`
	SellerID  int     `json:"seller_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Status    string  `json:"status"`
}

// OrderItemList 自定义类型用于商品项列表的JSON序列化和反序列化
type OrderItemList []OrderItem

// Scan 实现sql.Scanner接口，用于从数据库读取JSON数据
func (l *OrderItemList) Scan(value interface{}) error {
	if value == nil {
		*l = OrderItemList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("类型断言失败：无法将数据库值转换为[]byte")
	}

	var result OrderItemList
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*l = result
	return nil
}

// Value 实现driver.Valuer接口，用于将数据序列化为JSON存储到数据库
func (l OrderItemList) Value() (driver.Value, error) {
	if len(l) == 0 {
		// 空列表存储为空JSON数组
		return "[]", nil
	}

	bytes, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

// ContainsSeller 判断商品项列表中是否包含指定卖家的商品
func (l OrderItemList) ContainsSeller(sellerID int) bool {
	for _, item := range l {
		if item.SellerID == sellerID {
			return true
		}
	}
	return false
}

// TimelineEntry 订单时间线条目 - 追加式状态变更日志
type TimelineEntry struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Operator    string    `json:"operator"`
	Timestamp   time.Time `json:"timestamp"`
}

// Timeline 自定义类型用于时间线的JSON序列化和反序列化
type Timeline []TimelineEntry

// Scan 实现sql.Scanner接口
func (t *Timeline) Scan(value interface{}) error {
	if value == nil {
		*t = Timeline{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("类型断言失败：无法将数据库值转换为[]byte")
	}

	var result Timeline
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*t = result
	return nil
}

// Value 实现driver.Valuer接口
func (t Timeline) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}

	bytes, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

// Order 订单模型 - 与Next.js版本Order模型完全匹配
type Order struct {
	ID              uint          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID         string        `gorm:"column:order_id;size:20;not null;uniqueIndex" json:"order_id"` // 订单号
	UserID          int           `gorm:"column:user_id;index;not null" json:"user_id"`                 // 下单用户
	Items           OrderItemList `gorm:"column:items;type:text;not null" json:"items"`                 // 商品项列表
	Status          string        `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	Timeline        Timeline      `gorm:"column:timeline;type:text;not null" json:"timeline"` // 状态变更时间线
	ItemsAmount     float64       `gorm:"column:items_amount;type:decimal(10,2);not null" json:"items_amount"`
	ShippingFee     float64       `gorm:"column:shipping_fee;type:decimal(10,2);default:0" json:"shipping_fee"`
	DiscountAmount  float64       `gorm:"column:discount_amount;type:decimal(10,2);default:0" json:"discount_amount"`
	TotalAmount     float64       `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	CouponCode      string        `gorm:"column:coupon_code;size:30" json:"coupon_code"`
	ReceiverName    string        `gorm:"column:receiver_name;size:100;not null" json:"receiver_name"`
	ReceiverPhone   string        `gorm:"column:receiver_phone;size:15;not null" json:"receiver_phone"`
	Province        string        `gorm:"column:province;size:50;not null" json:"province"`
	City            string        `gorm:"column:city;size:50;not null" json:"city"`
	County          string        `gorm:"column:county;size:50;not null" json:"county"`
	DetailedAddress string        `gorm:"column:detailed_address;size:255;not null" json:"detailed_address"`
	// 揽收交接标记 - 卖家备货后标记，管理员派单后指派
	PickupSellerMarked   bool       `gorm:"column:pickup_seller_marked;default:false" json:"pickup_seller_marked"`
	PickupAdminAssigned  bool       `gorm:"column:pickup_admin_assigned;default:false" json:"pickup_admin_assigned"`
	PickupSellerMarkedAt *time.Time `gorm:"column:pickup_seller_marked_at;type:datetime" json:"pickup_seller_marked_at"`
	// 乐观锁版本号 - 防止并发更新互相覆盖
	Version   int       `gorm:"column:version;not null;default:0" json:"version"`
	OrderTime time.Time `gorm:"column:order_time;autoCreateTime" json:"order_time"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Order) TableName() string {
	return "orders"
}

// ApplyStatus 应用状态变更并追加时间线条目
// 状态变更与时间线追加必须通过此方法完成，保证每次变更恰好追加一条时间线
func (o *Order) ApplyStatus(status, description, operator string) error {
	if !ValidOrderStatuses[status] {
		return fmt.Errorf("无效的订单状态: %s", status)
	}

	o.Status = status
	o.Timeline = append(o.Timeline, TimelineEntry{
		Status:      status,
		Description: description,
		Operator:    operator,
		Timestamp:   time.Now().UTC(),
	})

	return nil
}

// CanCancel 判断订单当前状态是否允许取消
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// PendingPickupCandidate 判断订单是否处于待指派揽收状态
// 与待揽收列表的查询条件保持一致：卖家已标记、管理员未指派、订单待揽收
func (o *Order) PendingPickupCandidate() bool {
	return o.PickupSellerMarked && !o.PickupAdminAssigned && o.Status == OrderStatusReadyForPickup
}

// VersionedUpdates 生成一次状态变更的写回内容，版本号加一
// 写入时必须以加载时的版本号作WHERE条件，影响行数为0说明被并发更新抢先
func (o *Order) VersionedUpdates() map[string]interface{} {
	return map[string]interface{}{
		"status":   o.Status,
		"timeline": o.Timeline,
		"version":  o.Version + 1,
	}
}
