package controllers

import (
	"log"
	"net/http"
	"time"

	"nextjs_to_go/db"
	"nextjs_to_go/models"
	"nextjs_to_go/service/msg"
	"nextjs_to_go/utils"

	"github.com/gin-gonic/gin"
)

// CouponController 优惠券控制器

type CouponController struct{}

// CouponCreate 创建优惠券 - 仅管理员
func (cc *CouponController) CouponCreate(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		Code       string  `json:"code" binding:"required"`
		Type       string  `json:"type" binding:"required,oneof=fixed percent"`
		Value      float64 `json:"value" binding:"required,gt=0"`
		MinAmount  float64 `json:"min_amount" binding:"gte=0"`
		ValidFrom  string  `json:"valid_from" binding:"required"`
		ValidUntil string  `json:"valid_until" binding:"required"`
		UsageLimit int     `json:"usage_limit" binding:"gte=0"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	validFrom, err := utils.ParseDateTime(requestData.ValidFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "生效时间格式无效"})
		return
	}
	validUntil, err := utils.ParseDateTime(requestData.ValidUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "失效时间格式无效"})
		return
	}
	if !validUntil.After(validFrom) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "失效时间必须晚于生效时间"})
		return
	}

	// 券码查重
	var count int64
	db.DB.Model(&models.Coupon{}).Where("code = ?", requestData.Code).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "券码已存在"})
		return
	}

	coupon := models.Coupon{
		Code:       requestData.Code,
		Type:       requestData.Type,
		Value:      requestData.Value,
		MinAmount:  requestData.MinAmount,
		ValidFrom:  validFrom,
		ValidUntil: validUntil,
		UsageLimit: requestData.UsageLimit,
		Enabled:    true,
	}

	if err := db.DB.Create(&coupon).Error; err != nil {
		log.Printf("创建优惠券失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建优惠券失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "优惠券创建成功", "coupon": coupon})
}

// CouponList 查询优惠券列表 - 仅管理员
func (cc *CouponController) CouponList(c *gin.Context) {
	var coupons []models.Coupon
	if err := db.DB.Order("created_at DESC").Find(&coupons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询优惠券失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "coupons": coupons})
}

// CouponCheck 校验优惠券对指定金额是否可用，返回优惠后的金额
func (cc *CouponController) CouponCheck(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		Code   string  `json:"code" binding:"required"`
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	var coupon models.Coupon
	if err := db.DB.Where("code = ?", requestData.Code).First(&coupon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "优惠券不存在"})
		return
	}

	if !coupon.IsUsable(requestData.Amount, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "优惠券不可用"})
		return
	}

	discount := couponDiscount(&coupon, requestData.Amount)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"coupon":       coupon,
		"discount":     discount,
		"final_amount": requestData.Amount - discount,
	})
}

// CouponToggle 启用/停用优惠券 - 仅管理员
func (cc *CouponController) CouponToggle(c *gin.Context) {
	couponID := c.Param("id")

	var requestData struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效"})
		return
	}

	result := db.DB.Model(&models.Coupon{}).Where("id = ?", couponID).Update("enabled", *requestData.Enabled)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新优惠券失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "优惠券不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "优惠券状态已更新"})
}

// couponDiscount 计算优惠金额 - 满减券直接减，折扣券按百分比减，优惠不超过订单金额
func couponDiscount(coupon *models.Coupon, amount float64) float64 {
	var discount float64
	switch coupon.Type {
	case models.CouponTypeFixed:
		discount = coupon.Value
	case models.CouponTypePercent:
		discount = amount * coupon.Value / 100
	}
	if discount > amount {
		discount = amount
	}
	return discount
}
