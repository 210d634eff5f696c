package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// 评价状态枚举 - 与Next.js版本Review模型的status字段完全匹配
const (
	ReviewStatusPending   = "pending"   // 待审核
	ReviewStatusPublished = "published" // 已发布
	ReviewStatusHidden    = "hidden"    // 已隐藏
)

// 有用投票取值
const (
	VoteHelpful    = "helpful"
	VoteNotHelpful = "not_helpful"
)

// VoterMap 自定义类型记录每个用户的投票，用户ID -> helpful/not_helpful
// 按投票人记录而不是只累加计数，保证同一用户重复投票可撤销、可切换
type VoterMap map[string]string

// Scan 实现sql.Scanner接口，用于从数据库读取JSON数据
func (v *VoterMap) Scan(value interface{}) error {
	if value == nil {
		*v = make(VoterMap)
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("类型断言失败：无法将数据库值转换为[]byte")
	}

	var result VoterMap
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*v = result
	return nil
}

// Value 实现driver.Valuer接口，用于将数据序列化为JSON存储到数据库
func (v VoterMap) Value() (driver.Value, error) {
	if len(v) == 0 {
		// 空map存储为空JSON对象
		return "{}", nil
	}

	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return string(bytes), nil
}

// Review 商品评价模型
type Review struct {
	ID            uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID     string     `gorm:"column:product_id;size:30;index;not null" json:"product_id"`
	OrderID       string     `gorm:"column:order_id;size:20;index" json:"order_id"`
	UserID        int        `gorm:"column:user_id;index;not null" json:"user_id"`
	Rating        int        `gorm:"column:rating;not null" json:"rating"` // 1-5星
	Content       string     `gorm:"column:content;type:text" json:"content"`
	Status        string     `gorm:"column:status;size:20;not null;default:'pending'" json:"status"`
	ReplyContent  string     `gorm:"column:reply_content;type:text" json:"reply_content"`
	ReplyAuthor   string     `gorm:"column:reply_author;size:100" json:"reply_author"`
	ReplyTime     *time.Time `gorm:"column:reply_time;type:datetime" json:"reply_time"`
	HelpfulCount  int        `gorm:"column:helpful_count;not null;default:0" json:"helpful_count"`
	NotHelpful    int        `gorm:"column:not_helpful_count;not null;default:0" json:"not_helpful_count"`
	Voters        VoterMap   `gorm:"column:voters;type:text;not null" json:"-"`
	Version       int        `gorm:"column:version;not null;default:0" json:"-"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName 设置表名
func (Review) TableName() string {
	return "reviews"
}

// ApplyVote 应用某个用户的有用/无用投票
// 同方向重复投票视为撤销，反方向投票视为切换，计数始终由投票人明细重算
func (r *Review) ApplyVote(userID string, helpful bool) {
	if r.Voters == nil {
		r.Voters = make(VoterMap)
	}

	vote := VoteNotHelpful
	if helpful {
		vote = VoteHelpful
	}

	if r.Voters[userID] == vote {
		// 同方向重复投票 - 撤销
		delete(r.Voters, userID)
	} else {
		r.Voters[userID] = vote
	}

	// 由投票人明细重算计数，保证计数与明细永远一致
	r.HelpfulCount = 0
	r.NotHelpful = 0
	for _, v := range r.Voters {
		if v == VoteHelpful {
			r.HelpfulCount++
		} else {
			r.NotHelpful++
		}
	}
}

// VoteUpdates 生成投票写回的更新内容，版本号加一
// 投票是对voters整列的读改写，必须以加载时的版本号作WHERE条件防止并发投票互相覆盖
func (r *Review) VoteUpdates() map[string]interface{} {
	return map[string]interface{}{
		"voters":            r.Voters,
		"helpful_count":     r.HelpfulCount,
		"not_helpful_count": r.NotHelpful,
		"version":           r.Version + 1,
	}
}
