package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"

	"github.com/gin-gonic/gin"
)

// InitUserRoutes 初始化用户相关路由 - 与Next.js版本auth接口对应
func InitUserRoutes(router *gin.Engine) {
	// 初始化用户控制器
	userController := &controllers.UserController{}

	// 注册与登录
	router.POST("api/register", userController.UserRegistration)
	router.POST("api/token/obtain", userController.TokenObtainPair)
	router.POST("api/token/refresh", userController.TokenRefresh)

	// 个人信息 - 需要登录
	userGroup := router.Group("/api/users/", middleware.JWTAuthMiddleware())
	{
		userGroup.GET("profile", userController.UserProfile)
		userGroup.PUT("profile", userController.UserModify)
	}
}
