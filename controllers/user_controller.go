package controllers

import (
	"log"
	"net/http"

	"nextjs_to_go/config"
	"nextjs_to_go/db"
	"nextjs_to_go/models"
	"nextjs_to_go/service/msg"
	"nextjs_to_go/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserController 用户控制器

type UserController struct{}

// UserRegistration 用户注册 - 与Next.js版本register接口对应
func (uc *UserController) UserRegistration(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		Nickname string `json:"nickname" binding:"required"`
		Mobile   string `json:"mobile" binding:"required"`
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"omitempty,oneof=customer seller"` // 管理员不开放注册
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	// 检查手机号是否已注册
	var count int64
	if err := db.DB.Model(&models.User{}).Where("mobile = ?", requestData.Mobile).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "手机号已注册"})
		return
	}

	// 密码哈希
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(requestData.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("密码哈希失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "服务器内部错误"})
		return
	}

	role := requestData.Role
	if role == "" {
		role = models.RoleCustomer
	}

	user := models.User{
		Nickname: requestData.Nickname,
		Mobile:   requestData.Mobile,
		Email:    requestData.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		log.Printf("创建用户失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "创建用户失败"})
		return
	}

	// 卖家注册时同步创建卖家记录
	if role == models.RoleSeller {
		seller := models.Seller{
			UserID:   user.ID,
			ShopName: requestData.Nickname,
			Status:   "active",
		}
		if err := db.DB.Create(&seller).Error; err != nil {
			log.Printf("创建卖家记录失败: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "注册成功", "user": user})
}

// TokenObtainPair 登录换取令牌对 - 与Next.js版本login接口对应
func (uc *UserController) TokenObtainPair(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		Mobile   string `json:"mobile" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	// 查询用户
	var user models.User
	if err := db.DB.Where("mobile = ?", requestData.Mobile).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "手机号或密码错误"})
		return
	}

	// 校验密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(requestData.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "手机号或密码错误"})
		return
	}

	// 生成令牌对，角色写入claims
	cfg := config.LoadConfig()
	accessToken, refreshToken, err := utils.GenerateTokens(user.ID, user.Role, cfg)
	if err != nil {
		log.Printf("生成令牌失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "生成令牌失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"access":  accessToken,
		"refresh": refreshToken,
		"user":    user,
	})
}

// TokenRefresh 刷新访问令牌
func (uc *UserController) TokenRefresh(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		Refresh string `json:"refresh" binding:"required"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效"})
		return
	}

	cfg := config.LoadConfig()
	accessToken, err := utils.RefreshAccessToken(requestData.Refresh, cfg)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "刷新令牌无效或已过期"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "access": accessToken})
}

// UserProfile 查询当前用户信息
func (uc *UserController) UserProfile(c *gin.Context) {
	userID := c.GetInt("userID")

	var user models.User
	if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UserModify 修改当前用户信息
func (uc *UserController) UserModify(c *gin.Context) {
	// 绑定请求数据
	var requestData struct {
		Nickname string `json:"nickname"`
		Email    string `json:"email" binding:"omitempty,email"`
	}

	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请求数据无效", "errors": msg.TranslateBindingError(err)})
		return
	}

	userID := c.GetInt("userID")

	var user models.User
	if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
		return
	}

	// 更新字段
	if requestData.Nickname != "" {
		user.Nickname = requestData.Nickname
	}
	if requestData.Email != "" {
		user.Email = requestData.Email
	}

	if err := db.DB.Select("nickname", "email").Save(&user).Error; err != nil {
		log.Printf("更新用户信息失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "更新用户信息失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "用户信息修改成功", "user": user})
}
