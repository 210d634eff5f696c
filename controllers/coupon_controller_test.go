package controllers

import (
	"testing"

	"nextjs_to_go/models"
)

func TestCouponDiscount(t *testing.T) {
	// 满减券直接减固定金额
	fixed := models.Coupon{Type: models.CouponTypeFixed, Value: 100}
	if got := couponDiscount(&fixed, 500); got != 100 {
		t.Errorf("满减券优惠金额错误: 期望100, 实际%.2f", got)
	}

	// 折扣券按百分比减
	percent := models.Coupon{Type: models.CouponTypePercent, Value: 20}
	if got := couponDiscount(&percent, 500); got != 100 {
		t.Errorf("折扣券优惠金额错误: 期望100, 实际%.2f", got)
	}

	// 优惠金额不超过订单金额
	big := models.Coupon{Type: models.CouponTypeFixed, Value: 1000}
	if got := couponDiscount(&big, 500); got != 500 {
		t.Errorf("优惠金额不应超过订单金额: 实际%.2f", got)
	}
}
