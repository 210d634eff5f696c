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
)

// ReviewController 商品评价控制器

type ReviewController struct{}

// ReviewCreate 买家发表评价 - 只能评价自己已送达订单中的商品
func (rvc *ReviewController) ReviewCreate(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		ProductID string `json:"product_id" binding:"required"`
		OrderID   string `json:"order_id" binding:"required"`
		Rating    int    `json:"rating" binding:"required,min=1,max=5"`
		Content   string `json:"content"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	userID := c.GetInt("userID")

	// 查询订单并校验归属和状态
	var order models.Order
	if err := db.DB.Where("order_id = ?", requestData.OrderID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "无权评价该订单"})
		return
	}

	if order.Status != models.OrderStatusDelivered {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "订单送达后才能评价"})
		return
	}

	// 商品必须在该订单中
	found := false
	for _, item := range order.Items {
		if item.ProductID == requestData.ProductID {
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "商品不属于该订单"})
		return
	}

	review := models.Review{
		ProductID: requestData.ProductID,
		OrderID:   requestData.OrderID,
		UserID:    userID,
		Rating:    requestData.Rating,
		Content:   requestData.Content,
		Status:    models.ReviewStatusPending,
		Voters:    models.VoterMap{},
	}

	if err := db.DB.Create(&review).Error; err != nil {
		log.Printf("创建评价失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建评价失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "评价提交成功，等待审核", "review": review})
}

// ReviewList 商品评价列表 - 买家端只返回已发布的评价
func (rvc *ReviewController) ReviewList(c *gin.Context) {
	var queryData struct {
		ProductID string `form:"product_id" binding:"required"`
		Page      int    `form:"page"`
		PageSize  int    `form:"limit"`
	}

	if err := c.ShouldBindQuery(&queryData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数错误"})
		return
	}

	query := db.DB.Model(&models.Review{}).Where("product_id = ?", queryData.ProductID)

	// 管理员和卖家可以看到待审核和已隐藏的评价
	role := c.GetString("role")
	if role != models.RoleAdmin && role != models.RoleSeller {
		query = query.Where("status = ?", models.ReviewStatusPublished)
	}

	offset, pageSize := utils.Pagination(queryData.Page, queryData.PageSize)
	if queryData.Page <= 0 {
		queryData.Page = 1
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询评价总数失败: " + err.Error()})
		return
	}

	var reviews []models.Review
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询评价列表失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reviews": reviews,
		"pagination": gin.H{
			"page":  queryData.Page,
			"limit": pageSize,
			"total": total,
			"pages": utils.TotalPages(total, pageSize),
		},
	})
}

// ReviewModerate 评价审核 - 与Next.js版本PATCH /reviews/{id}/moderate对应
// 管理员或商品归属卖家可以发布/隐藏评价，并可同时附带一条回复
func (rvc *ReviewController) ReviewModerate(c *gin.Context) {
	reviewID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		Status string `json:"status" binding:"omitempty,oneof=published hidden"`
		Reply  string `json:"reply"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	if requestData.Status == "" && requestData.Reply == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "status和reply至少提供一项"})
		return
	}

	var review models.Review
	if err := db.DB.Where("id = ?", reviewID).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "评价不存在"})
		return
	}

	role := c.GetString("role")
	replyAuthor := "admin"

	// 卖家只能审核自己商品的评价
	if role == models.RoleSeller {
		seller, ok := currentSeller(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "卖家信息不存在"})
			return
		}

		var product models.Product
		if err := db.DB.Where("product_id = ? AND seller_id = ?", review.ProductID, seller.ID).First(&product).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "无权审核该评价"})
			return
		}
		replyAuthor = seller.ShopName
	}

	updates := map[string]interface{}{}
	if requestData.Status != "" {
		review.Status = requestData.Status
		updates["status"] = requestData.Status
	}

	if requestData.Reply != "" {
		now := time.Now()
		review.ReplyContent = requestData.Reply
		review.ReplyAuthor = replyAuthor
		review.ReplyTime = &now
		updates["reply_content"] = requestData.Reply
		updates["reply_author"] = replyAuthor
		updates["reply_time"] = now
	}

	if err := db.DB.Model(&models.Review{}).Where("id = ?", review.ID).Updates(updates).Error; err != nil {
		log.Printf("评价审核失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "评价审核失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "review": review})
}

// ReviewVote 评价有用/无用投票 - 与Next.js版本POST /reviews/{id}/helpful对应
// 按投票人记录投票，同一用户重复投票不会重复计数，可撤销可切换
func (rvc *ReviewController) ReviewVote(c *gin.Context) {
	reviewID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		Helpful *bool `json:"helpful" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	var review models.Review
	if err := db.DB.Where("id = ?", reviewID).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "评价不存在"})
		return
	}

	// 应用投票并整体回写投票明细与计数
	// 投票是对voters整列的读改写，版本号CAS防止并发投票互相覆盖
	review.ApplyVote(fmt.Sprintf("%d", c.GetInt("userID")), *requestData.Helpful)

	result := db.DB.Model(&models.Review{}).
		Where("id = ? AND version = ?", review.ID, review.Version).
		Updates(review.VoteUpdates())
	if result.Error != nil {
		log.Printf("评价投票失败: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "评价投票失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "评价已被其他投票更新，请重试"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"helpful":    review.HelpfulCount,
		"notHelpful": review.NotHelpful,
	})
}
