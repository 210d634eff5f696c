package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitDeliveryRoutes 初始化配送相关路由 - 与Next.js版本deliveries接口对应
func InitDeliveryRoutes(router *gin.Engine) {
	// 初始化配送控制器
	deliveryController := &controllers.DeliveryController{}

	deliveryGroup := router.Group("/deliveries/", middleware.JWTAuthMiddleware())
	{
		deliveryGroup.GET(":order_id", deliveryController.DeliveryDetail) // 查询配送单

		// 管理员更新物流信息
		deliveryGroup.PUT(":order_id/tracking", middleware.RequireRole(models.RoleAdmin), deliveryController.DeliveryUpdateTracking)
	}
}
