package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitReturnRoutes 初始化退换货相关路由 - 与Next.js版本returns接口对应
func InitReturnRoutes(router *gin.Engine) {
	// 初始化退换货控制器
	returnController := &controllers.ReturnController{}

	returnGroup := router.Group("/returns/", middleware.JWTAuthMiddleware())
	{
		// 买家提交退换货申请
		returnGroup.POST("", returnController.ReturnCreate)

		// 管理员、卖家查询退换货列表
		returnGroup.GET("", middleware.RequireRole(models.RoleAdmin, models.RoleSeller), returnController.ReturnList)

		// 管理员流转退换货状态
		returnGroup.POST(":id/status", middleware.RequireRole(models.RoleAdmin), returnController.ReturnChangeStatus)
	}
}
