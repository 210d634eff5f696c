package models

import (
	"testing"
	"time"
)

func TestCouponIsUsable(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	base := Coupon{
		Code:       "NEWYEAR100",
		Type:       CouponTypeFixed,
		Value:      100,
		MinAmount:  300,
		ValidFrom:  now.AddDate(0, 0, -7),
		ValidUntil: now.AddDate(0, 0, 7),
		UsageLimit: 10,
		UsedCount:  5,
		Enabled:    true,
	}

	if !base.IsUsable(500, now) {
		t.Error("满足所有条件的优惠券应当可用")
	}

	// 未达使用门槛
	if base.IsUsable(200, now) {
		t.Error("未达门槛金额不应可用")
	}

	// 已停用
	disabled := base
	disabled.Enabled = false
	if disabled.IsUsable(500, now) {
		t.Error("已停用的优惠券不应可用")
	}

	// 不在有效期内
	expired := base
	expired.ValidUntil = now.AddDate(0, 0, -1)
	if expired.IsUsable(500, now) {
		t.Error("已过期的优惠券不应可用")
	}

	// 用完次数
	usedUp := base
	usedUp.UsedCount = 10
	if usedUp.IsUsable(500, now) {
		t.Error("次数用尽的优惠券不应可用")
	}

	// 不限次数
	unlimited := base
	unlimited.UsageLimit = 0
	unlimited.UsedCount = 9999
	if !unlimited.IsUsable(500, now) {
		t.Error("不限次数的优惠券不受已用次数影响")
	}
}
