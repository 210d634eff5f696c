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
	"github.com/xuri/excelize/v2"
)

// PayoutController 卖家结算控制器

type PayoutController struct{}

// PayoutGenerate 生成结算单 - 管理员接口
// 将指定卖家所有已送达且未结算的订单聚合为一笔待打款结算单
func (pc *PayoutController) PayoutGenerate(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		SellerID int    `json:"seller_id" binding:"required"`
		Remark   string `json:"remark"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	// 校验卖家存在
	var seller models.Seller
	if err := db.DB.Where("id = ?", requestData.SellerID).First(&seller).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "卖家不存在"})
		return
	}

	// 已结算过的订单不再重复结算
	var payouts []models.Payout
	if err := db.DB.Where("seller_id = ? AND status <> ?", requestData.SellerID, models.PayoutStatusFailed).Find(&payouts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询历史结算单失败: " + err.Error()})
		return
	}
	settled := map[string]bool{}
	for _, p := range payouts {
		for _, id := range p.OrderIDs {
			settled[id] = true
		}
	}
	// 找出该卖家所有已送达的订单，按商品项归集金额
	var orders []models.Order
	if err := db.DB.Where("status = ?", models.OrderStatusDelivered).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询订单失败: " + err.Error()})
		return
	}

	var orderIDs models.StringList
	var amount float64
	for _, order := range orders {
		if settled[order.OrderID] {
			continue
		}

		sellerAmount := 0.0
		for _, item := range order.Items {
			if item.SellerID == requestData.SellerID {
				sellerAmount += item.Price * float64(item.Quantity)
			}
		}
		if sellerAmount > 0 {
			orderIDs = append(orderIDs, order.OrderID)
			amount += sellerAmount
		}
	}

	if len(orderIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "该卖家没有可结算的订单"})
		return
	}

	payout := models.Payout{
		PayoutID: generatePayoutNo(),
		SellerID: requestData.SellerID,
		OrderIDs: orderIDs,
		Amount:   amount,
		Status:   models.PayoutStatusPending,
		Remark:   requestData.Remark,
	}

	if err := db.DB.Create(&payout).Error; err != nil {
		log.Printf("创建结算单失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建结算单失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "结算单创建成功", "payout": payout})
}

// PayoutList 结算单列表 - 管理员看全部，卖家只看自己的
func (pc *PayoutController) PayoutList(c *gin.Context) {
	var queryData struct {
		Status   string `form:"status"`
		Page     int    `form:"page"`
		PageSize int    `form:"limit"`
	}

	if err := c.ShouldBindQuery(&queryData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数错误"})
		return
	}

	query := db.DB.Model(&models.Payout{})

	if c.GetString("role") == models.RoleSeller {
		seller, ok := currentSeller(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "卖家信息不存在"})
			return
		}
		query = query.Where("seller_id = ?", seller.ID)
	}

	if queryData.Status != "" {
		if !models.ValidPayoutStatuses[queryData.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "结算单状态无效"})
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
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询结算单总数失败: " + err.Error()})
		return
	}

	var payoutList []models.Payout
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&payoutList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询结算单失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"payouts": payoutList,
		"pagination": gin.H{
			"page":  queryData.Page,
			"limit": pageSize,
			"total": total,
			"pages": utils.TotalPages(total, pageSize),
		},
	})
}

// PayoutChangeStatus 结算单状态流转 - 管理员接口
// pending -> processing -> completed/failed
func (pc *PayoutController) PayoutChangeStatus(c *gin.Context) {
	payoutID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	// 验证状态值
	if !models.ValidPayoutStatuses[requestData.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的结算单状态"})
		return
	}

	var payout models.Payout
	if err := db.DB.Where("payout_id = ?", payoutID).First(&payout).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "结算单不存在"})
		return
	}

	// 已完结的结算单不允许再流转
	if payout.Status == models.PayoutStatusCompleted || payout.Status == models.PayoutStatusFailed {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "结算单已完结，不允许再变更状态"})
		return
	}

	payout.Status = requestData.Status
	updates := map[string]interface{}{"status": requestData.Status}
	if requestData.Status == models.PayoutStatusCompleted {
		now := time.Now()
		payout.CompletedTime = &now
		updates["completed_time"] = now
	}

	if err := db.DB.Model(&models.Payout{}).Where("payout_id = ?", payoutID).Updates(updates).Error; err != nil {
		log.Printf("更新结算单状态失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新结算单状态失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "结算单状态更新成功", "payout": payout})
}

// PayoutExport 导出结算单明细到Excel - 管理员接口
func (pc *PayoutController) PayoutExport(c *gin.Context) {
	payoutID := c.Param("id")

	var payout models.Payout
	if err := db.DB.Where("payout_id = ?", payoutID).First(&payout).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "结算单不存在"})
		return
	}

	var orders []models.Order
	if err := db.DB.Where("order_id IN ?", []string(payout.OrderIDs)).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询结算订单失败: " + err.Error()})
		return
	}

	// 创建Excel文件
	f := excelize.NewFile()

	// 设置工作表名称
	sheetName := "结算明细"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头
	header := []string{"序号", "订单号", "商品名称", "单价", "数量", "小计", "下单时间"}
	for i, h := range header {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), 1)
		f.SetCellValue(sheetName, cell, h)
	}

	// 填充数据 - 只导出归属该卖家的商品项
	row := 2
	seq := 1
	for _, order := range orders {
		for _, item := range order.Items {
			if item.SellerID != payout.SellerID {
				continue
			}

			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), seq)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), order.OrderID)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Name)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Price)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.Quantity)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), item.Price*float64(item.Quantity))
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), order.OrderTime.Format("2006-01-02 15:04:05"))
			row++
			seq++
		}
	}

	// 设置响应头
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payout_%s.xlsx", payout.PayoutID))

	// 导出文件
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "导出失败"})
		return
	}
}

// 生成结算单号 - 格式为P+YYYYMMDD+8位随机数字
func generatePayoutNo() string {
	currentDate := time.Now().Format("20060102")
	maxRetries := 5
	var payoutID string

	for retry := 0; retry < maxRetries; retry++ {
		// 生成8位随机数字
		var randomNum string
		for i := 0; i < 8; i++ {
			randomNum += fmt.Sprintf("%d", time.Now().UnixNano()%10)
			// 添加小延迟以确保随机性
			time.Sleep(time.Nanosecond)
		}

		payoutID = fmt.Sprintf("P%s%s", currentDate, randomNum)

		// 检查结算单号是否已存在
		var count int64
		err := db.DB.Model(&models.Payout{}).Where("payout_id = ?", payoutID).Count(&count).Error
		if err == nil && count == 0 {
			return payoutID
		}
	}

	// 如果重试多次仍失败，使用时间戳作为后备方案
	return fmt.Sprintf("P%s%d", currentDate, time.Now().UnixNano()%100000000)
}
