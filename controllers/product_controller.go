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

// ProductController 商品控制器

type ProductController struct{}

// ProductList 商品列表 - 买家端只返回已上架的商品，支持品牌/分类过滤
func (pc *ProductController) ProductList(c *gin.Context) {
	var queryData struct {
		Brand    string `form:"brand"`
		Category string `form:"category"`
		Keyword  string `form:"keyword"`
		Page     int    `form:"page"`
		PageSize int    `form:"limit"`
	}

	if err := c.ShouldBindQuery(&queryData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求参数错误"})
		return
	}

	query := db.DB.Model(&models.Product{}).Where("status = ?", models.ProductStatusOnline)

	if queryData.Brand != "" {
		query = query.Where("brand = ?", queryData.Brand)
	}
	if queryData.Category != "" {
		query = query.Where("category = ?", queryData.Category)
	}
	if queryData.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+queryData.Keyword+"%")
	}

	offset, pageSize := utils.Pagination(queryData.Page, queryData.PageSize)
	if queryData.Page <= 0 {
		queryData.Page = 1
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询商品总数失败: " + err.Error()})
		return
	}

	var products []models.Product
	if err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询商品列表失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"pagination": gin.H{
			"page":  queryData.Page,
			"limit": pageSize,
			"total": total,
			"pages": utils.TotalPages(total, pageSize),
		},
	})
}

// ProductDetail 商品详情
func (pc *ProductController) ProductDetail(c *gin.Context) {
	productID := c.Param("id")

	var product models.Product
	if err := db.DB.Where("product_id = ?", productID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "商品不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// ProductCreate 新增商品 - 卖家接口
func (pc *ProductController) ProductCreate(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		Name     string  `json:"name" binding:"required"`
		Brand    string  `json:"brand"`
		Category string  `json:"category"`
		Price    float64 `json:"price" binding:"required,gt=0"`
		Stock    int     `json:"stock" binding:"min=0"`
		ImageURL string  `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	seller, ok := currentSeller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "卖家信息不存在"})
		return
	}

	product := models.Product{
		ProductID: generateProductNo(),
		SellerID:  seller.ID,
		Name:      requestData.Name,
		Brand:     requestData.Brand,
		Category:  requestData.Category,
		Price:     requestData.Price,
		Stock:     requestData.Stock,
		Status:    models.ProductStatusOffline,
		ImageURL:  requestData.ImageURL,
	}

	if err := db.DB.Create(&product).Error; err != nil {
		log.Printf("创建商品失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建商品失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "商品创建成功", "product": product})
}

// ProductUpdate 修改商品 - 卖家只能修改自己的商品
func (pc *ProductController) ProductUpdate(c *gin.Context) {
	productID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		Name     string   `json:"name"`
		Brand    string   `json:"brand"`
		Category string   `json:"category"`
		Price    *float64 `json:"price" binding:"omitempty,gt=0"`
		Stock    *int     `json:"stock" binding:"omitempty,min=0"`
		ImageURL string   `json:"image_url"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	seller, ok := currentSeller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "卖家信息不存在"})
		return
	}

	var product models.Product
	if err := db.DB.Where("product_id = ? AND seller_id = ?", productID, seller.ID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "商品不存在"})
		return
	}

	// 更新字段
	if requestData.Name != "" {
		product.Name = requestData.Name
	}
	if requestData.Brand != "" {
		product.Brand = requestData.Brand
	}
	if requestData.Category != "" {
		product.Category = requestData.Category
	}
	if requestData.Price != nil {
		product.Price = *requestData.Price
	}
	if requestData.Stock != nil {
		product.Stock = *requestData.Stock
	}
	if requestData.ImageURL != "" {
		product.ImageURL = requestData.ImageURL
	}

	if err := db.DB.Save(&product).Error; err != nil {
		log.Printf("更新商品失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新商品失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "商品更新成功", "product": product})
}

// ProductChangeStatus 商品上下架 - 卖家只能操作自己的商品
func (pc *ProductController) ProductChangeStatus(c *gin.Context) {
	productID := c.Param("id")

	// 绑定请求数据
	var requestData struct {
		Status string `json:"status" binding:"required,oneof=online offline"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	seller, ok := currentSeller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "卖家信息不存在"})
		return
	}

	result := db.DB.Model(&models.Product{}).
		Where("product_id = ? AND seller_id = ?", productID, seller.ID).
		Update("status", requestData.Status)
	if result.Error != nil {
		log.Printf("商品上下架失败: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "商品上下架失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "商品不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "商品状态更新成功", "data": gin.H{"product_id": productID, "status": requestData.Status}})
}

// 生成商品编号 - 格式为G+YYYYMMDD+8位随机数字
func generateProductNo() string {
	currentDate := time.Now().Format("20060102")
	maxRetries := 5
	var productID string

	for retry := 0; retry < maxRetries; retry++ {
		// 生成8位随机数字
		var randomNum string
		for i := 0; i < 8; i++ {
			randomNum += fmt.Sprintf("%d", time.Now().UnixNano()%10)
			// 添加小延迟以确保随机性
			time.Sleep(time.Nanosecond)
		}

		productID = fmt.Sprintf("G%s%s", currentDate, randomNum)

		// 检查商品编号是否已存在
		var count int64
		err := db.DB.Model(&models.Product{}).Where("product_id = ?", productID).Count(&count).Error
		if err == nil && count == 0 {
			return productID
		}
	}

	// 如果重试多次仍失败，使用时间戳作为后备方案
	return fmt.Sprintf("G%s%d", currentDate, time.Now().UnixNano()%100000000)
}
