package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// 退换货申请状态枚举 - 与Next.js版本ReturnRequest模型的status字段完全匹配
const (
	ReturnStatusPending   = "pending"   // 待审核
	ReturnStatusApproved  = "approved"  // 已通过
	ReturnStatusRejected  = "rejected"  // 已驳回
	ReturnStatusPickedUp  = "picked_up" // 已揽收
	ReturnStatusReceived  = "received"  // 已收货
	ReturnStatusCompleted = "completed" // 已完成
)

// ValidReturnStatuses 所有合法的退换货申请状态
var ValidReturnStatuses = map[string]bool{
	ReturnStatusPending:   true,
	ReturnStatusApproved:  true,
	ReturnStatusRejected:  true,
	ReturnStatusPickedUp:  true,
	ReturnStatusReceived:  true,
	ReturnStatusCompleted: true,
}

// ReturnItem 退换货商品项 - 带有各自的原因和类型
type ReturnItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
	Type      string `json:"type"` // return(退货), exchange(换货)
}

// ReturnItemList 自定义类型用于退换货商品项的JSON序列化和反序列化
type ReturnItemList []ReturnItem

// Scan 实现sql.Scanner接口
func (l *ReturnItemList) Scan(value interface{}) error {
	if value == nil {
		*l = ReturnItemList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("类型断言失败：无法将数据库值转换为[]byte")
	}

	var result ReturnItemList
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*l = result
	return nil
}

// Value 实现driver.Valuer接口
func (l ReturnItemList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}

	bytes, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

// ReturnRequest 退换货申请模型 - 归属于一个订单、一个买家、一个卖家
type ReturnRequest struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ReturnID    string         `gorm:"column:return_id;size:30;not null;uniqueIndex" json:"return_id"` // 退换货单号
	OrderID     string         `gorm:"column:order_id;size:20;not null;index" json:"order_id"`
	UserID      int            `gorm:"column:user_id;index;not null" json:"user_id"`
	SellerID    int            `gorm:"column:seller_id;index;not null" json:"seller_id"`
	Items       ReturnItemList `gorm:"column:items;type:text;not null" json:"items"`
	Status      string         `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	AdminRemark string         `gorm:"column:admin_remark;type:text" json:"admin_remark"`
	RequestTime time.Time      `gorm:"column:request_time;autoCreateTime" json:"request_time"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (ReturnRequest) TableName() string {
	return "return_requests"
}
