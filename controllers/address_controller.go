package controllers

import (
	"log"
	"net/http"

	"nextjs_to_go/db"
	"nextjs_to_go/models"
	"nextjs_to_go/service/msg"

	"github.com/gin-gonic/gin"
)

// AddressController 收货地址控制器

type AddressController struct{}

// AddressList 查询当前用户的收货地址列表
func (ac *AddressController) AddressList(c *gin.Context) {
	var addresses []models.Address
	if err := db.DB.Where("user_id = ?", c.GetInt("userID")).Order("is_default DESC, updated_at DESC").Find(&addresses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "查询地址失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "addresses": addresses})
}

// AddressCreate 新增收货地址
func (ac *AddressController) AddressCreate(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		ReceiverName    string `json:"receiver_name" binding:"required"`
		PhoneNumber     string `json:"phone_number" binding:"required"`
		Province        string `json:"province" binding:"required"`
		City            string `json:"city" binding:"required"`
		County          string `json:"county" binding:"required"`
		DetailedAddress string `json:"detailed_address" binding:"required"`
		IsDefault       bool   `json:"is_default"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	userID := c.GetInt("userID")

	// 设为默认地址时取消其它默认
	if requestData.IsDefault {
		if err := db.DB.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
			log.Printf("重置默认地址失败: %v", err)
		}
	}

	address := models.Address{
		UserID:          userID,
		ReceiverName:    requestData.ReceiverName,
		PhoneNumber:     requestData.PhoneNumber,
		Province:        requestData.Province,
		City:            requestData.City,
		County:          requestData.County,
		DetailedAddress: requestData.DetailedAddress,
		IsDefault:       requestData.IsDefault,
	}

	if err := db.DB.Create(&address).Error; err != nil {
		log.Printf("创建地址失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建地址失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "地址创建成功", "address": address})
}

// AddressUpdate 修改收货地址 - 只能修改自己的地址
func (ac *AddressController) AddressUpdate(c *gin.Context) {
	addressID := c.Param("id")
	userID := c.GetInt("userID")

	var address models.Address
	if err := db.DB.Where("address_id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "地址不存在"})
		return
	}

	// 绑定请求数据
	var requestData struct {
		ReceiverName    string `json:"receiver_name"`
		PhoneNumber     string `json:"phone_number"`
		Province        string `json:"province"`
		City            string `json:"city"`
		County          string `json:"county"`
		DetailedAddress string `json:"detailed_address"`
		IsDefault       *bool  `json:"is_default"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效"})
		return
	}

	// 更新字段
	if requestData.ReceiverName != "" {
		address.ReceiverName = requestData.ReceiverName
	}
	if requestData.PhoneNumber != "" {
		address.PhoneNumber = requestData.PhoneNumber
	}
	if requestData.Province != "" {
		address.Province = requestData.Province
	}
	if requestData.City != "" {
		address.City = requestData.City
	}
	if requestData.County != "" {
		address.County = requestData.County
	}
	if requestData.DetailedAddress != "" {
		address.DetailedAddress = requestData.DetailedAddress
	}
	if requestData.IsDefault != nil {
		if *requestData.IsDefault {
			if err := db.DB.Model(&models.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
				log.Printf("重置默认地址失败: %v", err)
			}
		}
		address.IsDefault = *requestData.IsDefault
	}

	if err := db.DB.Save(&address).Error; err != nil {
		log.Printf("更新地址失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新地址失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "地址修改成功", "address": address})
}

// AddressDelete 删除收货地址 - 只能删除自己的地址
func (ac *AddressController) AddressDelete(c *gin.Context) {
	addressID := c.Param("id")

	result := db.DB.Where("address_id = ? AND user_id = ?", addressID, c.GetInt("userID")).Delete(&models.Address{})
	if result.Error != nil {
		log.Printf("删除地址失败: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "删除地址失败"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "地址不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "地址删除成功"})
}
