package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// 结算单状态枚举 - 与Next.js版本Payout模型的status字段完全匹配
const (
	PayoutStatusPending    = "pending"    // 待处理
	PayoutStatusProcessing = "processing" // 处理中
	PayoutStatusCompleted  = "completed"  // 已完成
	PayoutStatusFailed     = "failed"     // 已失败
)

// ValidPayoutStatuses 所有合法的结算单状态
var ValidPayoutStatuses = map[string]bool{
	PayoutStatusPending:    true,
	PayoutStatusProcessing: true,
	PayoutStatusCompleted:  true,
	PayoutStatusFailed:     true,
}

// StringList 自定义类型用于字符串列表的JSON序列化和反序列化
type StringList []string

// Scan 实现sql.Scanner接口
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("类型断言失败：无法将数据库值转换为[]byte")
	}

	var result StringList
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*l = result
	return nil
}

// Value 实现driver.Valuer接口
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}

	bytes, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

// Payout 卖家结算单模型 - 将一个卖家的一批订单聚合为一次打款
type Payout struct {
	ID            uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PayoutID      string     `gorm:"column:payout_id;size:30;not null;uniqueIndex" json:"payout_id"` // 结算单号
	SellerID      int        `gorm:"column:seller_id;index;not null" json:"seller_id"`
	OrderIDs      StringList `gorm:"column:order_ids;type:text;not null" json:"order_ids"`
	Amount        float64    `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`
	Status        string     `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	Remark        string     `gorm:"column:remark;type:text" json:"remark"`
	CompletedTime *time.Time `gorm:"column:completed_time;type:datetime" json:"completed_time"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Payout) TableName() string {
	return "payouts"
}
