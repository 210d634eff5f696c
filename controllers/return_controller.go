package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"nextjs_to_go/db"
	"nextjs_to_go/models"
	"nextjs_to_go/service/msg"
	"nextjs_to_go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReturnController 退换货控制器

type ReturnController struct{}

// ReturnCreate 买家提交退换货申请 - 与Next.js版本returns接口对应
func (rc *ReturnController) ReturnCreate(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		OrderID string `json:"order_id" binding:"required"`
		Items   []struct {
			ProductID string `json:"product_id" binding:"required"`
			Quantity  int    `json:"quantity" binding:"required,min=1"`
			Reason    string `json:"reason" binding:"required"`
			Type      string `json:"type" binding:"omitempty,oneof=return exchange"` // return:退货, exchange:换货，默认为return
		} `json:"items" binding:"required,min=1,dive"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	userID := c.GetInt("userID")

	// 查询订单
	var order models.Order
	if err := db.DB.Where("order_id = ?", requestData.OrderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "无权对该订单申请退换货"})
		return
	}

	// 通常只有已送达的订单才能申请退换货
	if order.Status != models.OrderStatusDelivered {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "订单状态不允许申请退换货"})
		return
	}

	// 同一订单的未完结申请不允许重复提交
	var existing int64
	db.DB.Model(&models.ReturnRequest{}).
		Where("order_id = ? AND status NOT IN ?", requestData.OrderID,
			[]string{models.ReturnStatusRejected, models.ReturnStatusCompleted}).
		Count(&existing)
	if existing > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "该订单已有处理中的退换货申请"})
		return
	}

	// 校验申请的商品都属于该订单，且归属同一个卖家（一个申请归属一个卖家）
	itemSeller := map[string]int{}
	for _, item := range order.Items {
		itemSeller[item.ProductID] = item.SellerID
	}

	sellerID := 0
	var items models.ReturnItemList
	for _, reqItem := range requestData.Items {
		sid, ok := itemSeller[reqItem.ProductID]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "商品不属于该订单: " + reqItem.ProductID})
			return
		}
		if sellerID == 0 {
			sellerID = sid
		} else if sellerID != sid {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "一次申请只能包含同一卖家的商品"})
			return
		}

		itemType := reqItem.Type
		if itemType == "" {
			itemType = "return"
		}

		items = append(items, models.ReturnItem{
			ProductID: reqItem.ProductID,
			Quantity:  reqItem.Quantity,
			Reason:    reqItem.Reason,
			Type:      itemType,
		})
	}

	// 生成退换货单号
	returnID := generateReturnOrderNo()

	returnRequest := models.ReturnRequest{
		ReturnID:    returnID,
		OrderID:     requestData.OrderID,
		UserID:      userID,
		SellerID:    sellerID,
		Items:       items,
		Status:      models.ReturnStatusPending,
		RequestTime: time.Now(),
	}

	if err := db.DB.Create(&returnRequest).Error; err != nil {
		log.Printf("创建退换货申请失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建退换货申请失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "退换货申请提交成功",
		"data": gin.H{
			"order_id":  requestData.OrderID,
			"return_id": returnID,
		},
	})
}

// ReturnViewForOrder 卖家查看订单的退换货申请 - 与Next.js版本GET /orders/{id}/return对应
// 归属校验按商品项级别进行：订单中至少有一件该卖家的商品才可见
// 订单没有退换货申请时返回null，这不是错误
func (rc *ReturnController) ReturnViewForOrder(c *gin.Context) {
	orderID := c.Param("id")

	seller, ok := currentSeller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "卖家信息不存在"})
		return
	}

	var order models.Order
	if err := db.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	// 先做归属校验，避免向无关卖家泄露退换货内容
	if !order.Items.ContainsSeller(seller.ID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "订单中不包含该卖家的商品"})
		return
	}

	var returnRequest models.ReturnRequest
	if err := db.DB.Where("order_id = ?", orderID).Order("request_time DESC").First(&returnRequest).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// 尚无退换货申请，返回null
			c.JSON(http.StatusOK, gin.H{"success": true, "returnRequest": nil})
			return
		}
		log.Printf("查询退换货申请失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询退换货申请失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "returnRequest": returnRequest})
}

// ReturnChangeStatus 退换货申请状态流转 - 管理员接口
func (rc *ReturnController) ReturnChangeStatus(c *gin.Context) {
	returnID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		Status string `json:"status" binding:"required"`
		Remark string `json:"remark"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	// 验证状态值
	if !models.ValidReturnStatuses[requestData.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的退换货状态"})
		return
	}

	var returnRequest models.ReturnRequest
	if err := db.DB.Where("return_id = ?", returnID).First(&returnRequest).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "退换货申请不存在"})
		return
	}

	// 已完结的申请不允许再流转
	if returnRequest.Status == models.ReturnStatusCompleted || returnRequest.Status == models.ReturnStatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "退换货申请已完结，不允许再变更状态"})
		return
	}

	returnRequest.Status = requestData.Status
	if requestData.Remark != "" {
		if returnRequest.AdminRemark != "" {
			returnRequest.AdminRemark += "\n" + requestData.Remark
		} else {
			returnRequest.AdminRemark = requestData.Remark
		}
	}

	if err := db.DB.Select("status", "admin_remark").Save(&returnRequest).Error; err != nil {
		log.Printf("更新退换货申请失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新退换货申请失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "退换货申请状态更新成功", "data": gin.H{"return_id": returnID, "status": requestData.Status}})
}

// ReturnList 退换货申请列表 - 管理员看全部，卖家只看自己的
func (rc *ReturnController) ReturnList(c *gin.Context) {
	var queryData struct {
		Status   string `form:"status"`
		Page     int    `form:"page"`
		PageSize int    `form:"limit"`
	}

	if err := c.ShouldBindQuery(&queryData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数错误"})
		return
	}

	query := db.DB.Model(&models.ReturnRequest{})

	if c.GetString("role") == models.RoleSeller {
		seller, ok := currentSeller(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "卖家信息不存在"})
			return
		}
		query = query.Where("seller_id = ?", seller.ID)
	}

	if queryData.Status != "" {
		if !models.ValidReturnStatuses[queryData.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "退换货状态无效"})
			return
		}
		query = query.Where("status = ?", queryData.Status)
	}

	offset, pageSize := utils.Pagination(queryData.Page, queryData.PageSize)
	if queryData.Page <= 0 {
		queryData.Page = 1
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询退换货申请总数失败: " + err.Error()})
		return
	}

	var returnRequests []models.ReturnRequest
	if err := query.Offset(offset).Limit(pageSize).Order("request_time DESC").Find(&returnRequests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询退换货申请失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"returnRequests": returnRequests,
		"pagination": gin.H{
			"page":  queryData.Page,
			"limit": pageSize,
			"total": total,
			"pages": utils.TotalPages(total, pageSize),
		},
	})
}

// 生成退换货单号 - 格式为T+YYYYMMDD+8位随机数字
func generateReturnOrderNo() string {
	currentDate := time.Now().Format("20060102")
	maxRetries := 5
	var returnID string

	for retry := 0; retry < maxRetries; retry++ {
		// 生成8位随机数字
		var randomNum string
		for i := 0; i < 8; i++ {
			randomNum += fmt.Sprintf("%d", time.Now().UnixNano()%10)
			// 添加小延迟以确保随机性
			time.Sleep(time.Nanosecond)
		}

		returnID = fmt.Sprintf("T%s%s", currentDate, randomNum)

		// 检查退换货单号是否已存在
		var count int64
		err := db.DB.Model(&models.ReturnRequest{}).Where("return_id = ?", returnID).Count(&count).Error
		if err == nil && count == 0 {
			return returnID
		}
	}

	// 如果重试多次仍失败，使用时间戳作为后备方案
	return fmt.Sprintf("T%s%d", currentDate, time.Now().UnixNano()%100000000)
}
