package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"nextjs_to_go/db"
	"nextjs_to_go/models"
	"nextjs_to_go/other_method/message"
	"nextjs_to_go/service/msg"
	"nextjs_to_go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 批量状态更新的单条结果 - 按订单号逐条返回结果，不吞掉局部失败
const (
	BulkResultUpdated  = "updated"   // 更新成功
	BulkResultNotFound = "not_found" // 订单不存在
	BulkResultConflict = "conflict"  // 版本冲突，更新被并发写入抢先
)

// OrderController 订单控制器

type OrderController struct{}

// OrderCreate 创建订单 - 与Next.js版本checkout接口对应
func (oc *OrderController) OrderCreate(c *gin.Context) {
	// 绑定请求参数
	var orderData struct {
		Items []struct {
			ProductID string `json:"product_id" binding:"required"`
			Quantity  int    `json:"quantity" binding:"required,min=1"`
		} `json:"items" binding:"required,min=1,dive"`
		AddressID  int    `json:"address_id" binding:"required"`
		CouponCode string `json:"coupon_code"`
	}

	if err := c.ShouldBindJSON(&orderData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数错误", "errors": msg.TranslateBindingError(err)})
		return
	}

	userID := c.GetInt("userID")

	// 查询收货地址并校验归属
	var address models.Address
	if err := db.DB.Where("address_id = ? AND user_id = ?", orderData.AddressID, userID).First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "收货地址不存在"})
		return
	}

	// 逐个校验商品并组装订单商品项
	var items models.OrderItemList
	var itemsAmount float64
	for _, reqItem := range orderData.Items {
		var product models.Product
		if err := db.DB.Where("product_id = ?", reqItem.ProductID).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "商品不存在: " + reqItem.ProductID})
			return
		}

		if product.Status != models.ProductStatusOnline {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "商品未上架: " + product.Name})
			return
		}

		if product.Stock < reqItem.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "商品库存不足: " + product.Name})
			return
		}

		items = append(items, models.OrderItem{
			ProductID: product.ProductID,
			SellerID:  product.SellerID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  reqItem.Quantity,
			Status:    models.OrderStatusPending,
		})
		itemsAmount += product.Price * float64(reqItem.Quantity)
	}

	// 处理优惠券
	var discountAmount float64
	if orderData.CouponCode != "" {
		var coupon models.Coupon
		if err := db.DB.Where("code = ?", orderData.CouponCode).First(&coupon).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "优惠券不存在"})
			return
		}

		if !coupon.IsUsable(itemsAmount, time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "优惠券不可用"})
			return
		}

		discountAmount = couponDiscount(&coupon, itemsAmount)
	}

	// 生成订单号
	orderID := generateOrderNo()

	order := models.Order{
		OrderID:         orderID,
		UserID:          userID,
		Items:           items,
		Status:          models.OrderStatusPending,
		ItemsAmount:     itemsAmount,
		DiscountAmount:  discountAmount,
		TotalAmount:     itemsAmount - discountAmount,
		CouponCode:      orderData.CouponCode,
		ReceiverName:    address.ReceiverName,
		ReceiverPhone:   address.PhoneNumber,
		Province:        address.Province,
		City:            address.City,
		County:          address.County,
		DetailedAddress: address.DetailedAddress,
		OrderTime:       time.Now(),
	}

	// 创建即是第一次状态变更，同样走ApplyStatus保证时间线完整
	if err := order.ApplyStatus(models.OrderStatusPending, "订单创建成功", "customer"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}

	// 订单、库存扣减、配送单、优惠券核销在同一事务中落库
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			result := tx.Model(&models.Product{}).
				Where("product_id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("商品库存不足: %s", item.ProductID)
			}
		}

		delivery := models.Delivery{
			OrderID: orderID,
			Status:  models.DeliveryStatusPending,
		}
		if err := tx.Create(&delivery).Error; err != nil {
			return err
		}

		if orderData.CouponCode != "" {
			if err := tx.Model(&models.Coupon{}).Where("code = ?", orderData.CouponCode).
				Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Printf("创建订单失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建订单失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "订单创建成功",
		"order_id": orderID,
		"data":     convertOrderToMap(order),
	})
}

// OrderDetail 获取订单详情 - 买家看自己的，管理员看所有，卖家看包含自己商品的
func (oc *OrderController) OrderDetail(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := db.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	userID := c.GetInt("userID")
	role := c.GetString("role")

	// 归属校验
	switch role {
	case models.RoleAdmin:
		// 管理员不受限制
	case models.RoleSeller:
		seller, ok := currentSeller(c)
		if !ok || !order.Items.ContainsSeller(seller.ID) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "无权查看该订单"})
			return
		}
	default:
		if order.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "无权查看该订单"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "查询订单信息成功",
		"data":    convertOrderToMap(order),
	})
}

// OrderList 获取当前用户的订单列表 - 分页+状态过滤
func (oc *OrderController) OrderList(c *gin.Context) {
	var queryData struct {
		Status   string `form:"status"`
		Page     int    `form:"page"`
		PageSize int    `form:"limit"`
	}

	if err := c.ShouldBindQuery(&queryData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数错误"})
		return
	}

	userID := c.GetInt("userID")
	query := db.DB.Model(&models.Order{}).Where("user_id = ?", userID)

	// 应用状态过滤
	if queryData.Status != "" {
		if !models.ValidOrderStatuses[queryData.Status] {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "订单状态无效"})
			return
		}
		query = query.Where("status = ?", queryData.Status)
	}

	offset, pageSize := utils.Pagination(queryData.Page, queryData.PageSize)
	if queryData.Page <= 0 {
		queryData.Page = 1
	}

	// 执行分页查询
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("获取订单总数失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询订单总数失败: " + err.Error()})
		return
	}

	var orders []models.Order
	if err := query.Offset(offset).Limit(pageSize).Order("order_time DESC").Find(&orders).Error; err != nil {
		log.Printf("查询订单列表失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询订单列表失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  convertOrdersToMap(orders),
		"pagination": gin.H{
			"page":  queryData.Page,
			"limit": pageSize,
			"total": total,
			"pages": utils.TotalPages(total, pageSize),
		},
	})
}

// ChangeStatus 修改单个订单状态 - 管理员接口
func (oc *OrderController) ChangeStatus(c *gin.Context) {
	orderID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		Status      string `json:"status" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	// 验证状态值
	if !models.ValidOrderStatuses[requestData.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的订单状态"})
		return
	}

	result, err := applyStatusTransition(orderID, requestData.Status, requestData.Description, "admin")
	if err != nil {
		log.Printf("修改订单状态失败: order_id=%s, error=%v", orderID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "修改订单状态失败: " + err.Error()})
		return
	}

	switch result {
	case BulkResultNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
	case BulkResultConflict:
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "订单已被其他操作更新，请重试"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "订单状态更新成功"})
	}
}

// BulkUpdateStatus 批量修改订单状态 - 与Next.js版本PATCH /orders/bulk对应
// 逐个订单返回更新结果，局部失败不会被整体成功掩盖
func (oc *OrderController) BulkUpdateStatus(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		OrderIDs []string `json:"orderIds" binding:"required,min=1"`
		Action   string   `json:"action" binding:"required"`
		Status   string   `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	if requestData.Action != "updateStatus" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "不支持的批量操作: " + requestData.Action})
		return
	}

	// 验证状态值
	if !models.ValidOrderStatuses[requestData.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的订单状态"})
		return
	}

	results, updated, err := applyBulkStatus(requestData.OrderIDs, func(orderID string) (string, error) {
		return applyStatusTransition(orderID, requestData.Status, "", "admin")
	})
	if err != nil {
		log.Printf("批量修改订单状态失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "批量修改订单状态失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("批量更新完成，成功%d条，共%d条", updated, len(requestData.OrderIDs)),
		"results": results,
	})
}

// PendingPickups 查询待指派揽收的订单 - 管理员接口
// 条件：卖家已标记备货 且 管理员未指派 且 订单处于待揽收状态，按卖家标记时间倒序
func (oc *OrderController) PendingPickups(c *gin.Context) {
	var queryData struct {
		Page     int `form:"page"`
		PageSize int `form:"limit"`
	}

	if err := c.ShouldBindQuery(&queryData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数错误"})
		return
	}

	offset, pageSize := utils.Pagination(queryData.Page, queryData.PageSize)
	if queryData.Page <= 0 {
		queryData.Page = 1
	}

	query := db.DB.Model(&models.Order{}).
		Where("pickup_seller_marked = ? AND pickup_admin_assigned = ? AND status = ?",
			true, false, models.OrderStatusReadyForPickup)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("获取待揽收订单总数失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询待揽收订单失败: " + err.Error()})
		return
	}

	var orders []models.Order
	if err := query.Offset(offset).Limit(pageSize).Order("pickup_seller_marked_at DESC").Find(&orders).Error; err != nil {
		log.Printf("查询待揽收订单失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询待揽收订单失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  convertOrdersToMap(orders),
		"pagination": gin.H{
			"page":  queryData.Page,
			"limit": pageSize,
			"total": total,
			"pages": utils.TotalPages(total, pageSize),
		},
	})
}

// PickupMark 卖家标记备货完成 - 揽收交接流程第一步
func (oc *OrderController) PickupMark(c *gin.Context) {
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

	// 归属校验按商品项级别进行，订单中至少要有一件该卖家的商品
	if !order.Items.ContainsSeller(seller.ID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "订单中不包含该卖家的商品"})
		return
	}

	// 只有已确认/处理中/待揽收的订单才允许标记
	if order.Status != models.OrderStatusConfirmed &&
		order.Status != models.OrderStatusProcessing &&
		order.Status != models.OrderStatusReadyForPickup {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "订单状态不允许标记备货"})
		return
	}

	now := time.Now().UTC()
	order.PickupSellerMarked = true
	order.PickupSellerMarkedAt = &now

	// 未到待揽收状态的订单随本次标记一并推进状态，且只追加一条时间线
	if order.Status != models.OrderStatusReadyForPickup {
		if err := order.ApplyStatus(models.OrderStatusReadyForPickup, "卖家已备货，等待揽收", "seller"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
			return
		}
	}

	updates := order.VersionedUpdates()
	updates["pickup_seller_marked"] = true
	updates["pickup_seller_marked_at"] = now

	result := db.DB.Model(&models.Order{}).
		Where("order_id = ? AND version = ?", order.OrderID, order.Version).
		Updates(updates)
	if result.Error != nil {
		log.Printf("卖家标记备货失败: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "标记备货失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "订单已被其他操作更新，请重试"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "备货标记成功", "data": gin.H{"order_id": orderID}})
}

// PickupAssign 管理员指派承运商揽收 - 揽收交接流程第二步
func (oc *OrderController) PickupAssign(c *gin.Context) {
	orderID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		ExpressCompany string `json:"express_company" binding:"required"`
		ExpressNumber  string `json:"express_number" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	var order models.Order
	if err := db.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	// 必须是卖家已标记且尚未指派的待揽收订单
	if !order.PendingPickupCandidate() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "订单状态不允许指派揽收"})
		return
	}

	if err := order.ApplyStatus(models.OrderStatusShipped, "已指派承运商揽收", "admin"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}

	now := time.Now().UTC()
	updates := order.VersionedUpdates()
	updates["pickup_admin_assigned"] = true

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("order_id = ? AND version = ?", order.OrderID, order.Version).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errOrderConflict
		}

		// 配送单随订单状态推导更新，承运商信息写入配送单
		return tx.Model(&models.Delivery{}).Where("order_id = ?", order.OrderID).
			Updates(map[string]interface{}{
				"status":          models.DeriveDeliveryStatus(order.Status),
				"express_company": requestData.ExpressCompany,
				"express_number":  requestData.ExpressNumber,
				"dispatched_time": now,
			}).Error
	})
	if err != nil {
		if errors.Is(err, errOrderConflict) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "订单已被其他操作更新，请重试"})
			return
		}
		log.Printf("指派揽收失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "指派揽收失败"})
		return
	}

	// 发货短信通知，失败只记录日志不影响主流程
	go func(phone, orderID string) {
		if _, err := message.SendOrderShippedSms(phone, orderID); err != nil {
			log.Printf("发货短信发送失败: order_id=%s, error=%v", orderID, err)
		}
	}(order.ReceiverPhone, order.OrderID)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "揽收指派成功", "data": gin.H{"order_id": orderID}})
}

// OrderCancel 取消订单 - 只有待确认和已确认状态的订单才能取消
func (oc *OrderController) OrderCancel(c *gin.Context) {
	orderID := c.Param("id")

	var order models.Order
	if err := db.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	// 买家只能取消自己的订单
	if c.GetString("role") != models.RoleAdmin && order.UserID != c.GetInt("userID") {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "无权取消该订单"})
		return
	}

	if !order.CanCancel() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "只有待确认和已确认状态的订单才能取消"})
		return
	}

	result, err := applyStatusTransition(order.OrderID, models.OrderStatusCancelled, "订单已取消", c.GetString("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "取消订单失败"})
		return
	}
	if result == BulkResultConflict {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "订单已被其他操作更新，请重试"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "订单取消成功", "data": gin.H{"order_id": orderID}})
}

// errOrderConflict 版本冲突哨兵错误
var errOrderConflict = errors.New("订单版本冲突")

// applyBulkStatus 逐个订单执行状态变更并收集结果
// 每个订单号恰好产生一条结果，顺序与请求一致；任何一单出错立即中止
func applyBulkStatus(orderIDs []string, transition func(orderID string) (string, error)) ([]gin.H, int, error) {
	results := make([]gin.H, 0, len(orderIDs))
	updated := 0
	for _, orderID := range orderIDs {
		result, err := transition(orderID)
		if err != nil {
			return nil, 0, err
		}

		if result == BulkResultUpdated {
			updated++
		}
		results = append(results, gin.H{"order_id": orderID, "result": result})
	}
	return results, updated, nil
}

// applyStatusTransition 执行一次订单状态变更
// 状态写入、时间线追加、配送单推导在同一事务内完成，版本号CAS防止并发丢失更新
func applyStatusTransition(orderID, status, description, operator string) (string, error) {
	var order models.Order
	if err := db.DB.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BulkResultNotFound, nil
		}
		return "", err
	}

	if description == "" {
		description = fmt.Sprintf("订单状态由%s变更为%s", order.Status, status)
	}

	if err := order.ApplyStatus(status, description, operator); err != nil {
		return "", err
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("order_id = ? AND version = ?", order.OrderID, order.Version).
			Updates(order.VersionedUpdates())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errOrderConflict
		}

		// 订单状态是唯一数据源，配送状态在每次变更中重新推导
		updates := map[string]interface{}{"status": models.DeriveDeliveryStatus(order.Status)}
		if order.Status == models.OrderStatusDelivered {
			updates["delivered_time"] = time.Now().UTC()
		}
		return tx.Model(&models.Delivery{}).Where("order_id = ?", order.OrderID).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, errOrderConflict) {
			return BulkResultConflict, nil
		}
		return "", err
	}

	log.Printf("订单状态变更: order_id=%s, 新状态=%s, 操作人=%s", orderID, status, operator)
	return BulkResultUpdated, nil
}

// currentSeller 从上下文中的用户ID查找卖家记录
func currentSeller(c *gin.Context) (*models.Seller, bool) {
	var seller models.Seller
	if err := db.DB.Where("user_id = ?", c.GetInt("userID")).First(&seller).Error; err != nil {
		return nil, false
	}
	return &seller, true
}

// 工具函数：生成订单号 - 格式为Y+YYYYMMDD+8位随机数字
func generateOrderNo() string {
	currentDate := time.Now().Format("20060102")
	maxRetries := 5
	var orderID string

	for retry := 0; retry < maxRetries; retry++ {
		// 生成8位随机数字
		var randomNum string
		for i := 0; i < 8; i++ {
			randomNum += fmt.Sprintf("%d", time.Now().UnixNano()%10)
			// 添加小延迟以确保随机性
			time.Sleep(time.Nanosecond)
		}

		orderID = fmt.Sprintf("Y%s%s", currentDate, randomNum)

		// 检查订单号是否已存在
		var count int64
		err := db.DB.Model(&models.Order{}).Where("order_id = ?", orderID).Count(&count).Error
		if err == nil && count == 0 {
			return orderID
		}
	}

	// 如果重试多次仍失败，使用时间戳作为后备方案
	return fmt.Sprintf("Y%s%d", currentDate, time.Now().UnixNano()%100000000)
}

// 工具函数：将订单对象转换为map - 与Next.js版本返回格式一致
func convertOrderToMap(order models.Order) map[string]interface{} {
	result := make(map[string]interface{})
	result["order_id"] = order.OrderID
	result["user_id"] = order.UserID
	result["items"] = order.Items
	result["status"] = order.Status
	result["timeline"] = order.Timeline
	result["items_amount"] = order.ItemsAmount
	result["shipping_fee"] = order.ShippingFee
	result["discount_amount"] = order.DiscountAmount
	result["total_amount"] = order.TotalAmount
	result["coupon_code"] = order.CouponCode
	result["receiver_name"] = order.ReceiverName
	result["receiver_phone"] = order.ReceiverPhone
	result["province"] = order.Province
	result["city"] = order.City
	result["county"] = order.County
	result["detailed_address"] = order.DetailedAddress
	result["pickup"] = map[string]interface{}{
		"seller_marked":  order.PickupSellerMarked,
		"admin_assigned": order.PickupAdminAssigned,
	}
	if order.PickupSellerMarkedAt != nil {
		result["pickup"].(map[string]interface{})["seller_marked_at"] = utils.FormatDateTime(*order.PickupSellerMarkedAt)
	}
	result["order_time"] = utils.FormatDateTime(order.OrderTime)

	return result
}

// 工具函数：将订单列表转换为map数组
func convertOrdersToMap(orders []models.Order) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(orders))
	for _, order := range orders {
		result = append(result, convertOrderToMap(order))
	}
	return result
}
