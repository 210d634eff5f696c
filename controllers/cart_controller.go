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
	"gorm.io/gorm"
)

// CartController 购物车控制器

type CartController struct{}

// getOrCreateCart 获取用户购物车，不存在则创建空购物车
func getOrCreateCart(userID int) (*models.Cart, error) {
	var cart models.Cart
	err := db.DB.Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{
			UserID: userID,
			Items:  models.CartItemsMap{},
		}
		if err := db.DB.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// CartGet 查询购物车
func (cc *CartController) CartGet(c *gin.Context) {
	cart, err := getOrCreateCart(c.GetInt("userID"))
	if err != nil {
		log.Printf("查询购物车失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询购物车失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
}

// CartAddItem 添加商品到购物车 - 已存在时累加数量
func (cc *CartController) CartAddItem(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	// 校验商品存在且在售
	var product models.Product
	if err := db.DB.Where("product_id = ? AND status = ?", requestData.ProductID, models.ProductStatusOnline).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "商品不存在或未上架"})
		return
	}

	cart, err := getOrCreateCart(c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询购物车失败"})
		return
	}

	item := cart.Items[requestData.ProductID]
	item.Quantity += requestData.Quantity
	if item.AddedTime == "" {
		item.AddedTime = utils.FormatDateTime(time.Now())
	}
	cart.Items[requestData.ProductID] = item

	if err := db.DB.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).Update("items", cart.Items).Error; err != nil {
		log.Printf("更新购物车失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新购物车失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "添加成功", "cart": cart})
}

// CartRemoveItem 从购物车移除商品
func (cc *CartController) CartRemoveItem(c *gin.Context) {
	productID := c.Param("product_id")

	cart, err := getOrCreateCart(c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询购物车失败"})
		return
	}

	if _, ok := cart.Items[productID]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "购物车中没有该商品"})
		return
	}

	delete(cart.Items, productID)

	if err := db.DB.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).Update("items", cart.Items).Error; err != nil {
		log.Printf("更新购物车失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新购物车失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "移除成功", "cart": cart})
}

// CartClear 清空购物车
func (cc *CartController) CartClear(c *gin.Context) {
	cart, err := getOrCreateCart(c.GetInt("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询购物车失败"})
		return
	}

	cart.Items = models.CartItemsMap{}

	if err := db.DB.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).Update("items", cart.Items).Error; err != nil {
		log.Printf("清空购物车失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "清空购物车失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "购物车已清空"})
}
