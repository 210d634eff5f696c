package controllers

import (
	"log"
	"net/http"

	"nextjs_to_go/db"
	"nextjs_to_go/models"
	"nextjs_to_go/service/msg"

	"github.com/gin-gonic/gin"
)

// DeliveryController 配送单控制器

type DeliveryController struct{}

// DeliveryDetail 查询订单的配送单 - 配送状态由订单状态推导，承运商字段归配送单所有
func (dc *DeliveryController) DeliveryDetail(c *gin.Context) {
	orderID := c.Param("order_id")

	var delivery models.Delivery
	if err := db.DB.Where("order_id = ?", orderID).First(&delivery).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "配送单不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "delivery": delivery})
}

// DeliveryUpdateTracking 更新配送单承运商信息 - 管理员接口
// 只更新承运商跟踪字段，配送状态不在这里修改（由订单状态变更推导）
func (dc *DeliveryController) DeliveryUpdateTracking(c *gin.Context) {
	orderID := c.Param("order_id")

	// 绑定请求数据
	var requestData struct {
		ExpressCompany string `json:"express_company" binding:"required"`
		ExpressNumber  string `json:"express_number" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	var delivery models.Delivery
	if err := db.DB.Where("order_id = ?", orderID).First(&delivery).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "配送单不存在"})
		return
	}

	if err := db.DB.Model(&models.Delivery{}).Where("order_id = ?", orderID).
		Updates(map[string]interface{}{
			"express_company": requestData.ExpressCompany,
			"express_number":  requestData.ExpressNumber,
		}).Error; err != nil {
		log.Printf("更新配送单承运商信息失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新配送单失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "配送单更新成功", "data": gin.H{"order_id": orderID}})
}
