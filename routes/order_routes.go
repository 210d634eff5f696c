package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitOrderRoutes 初始化订单相关路由 - 与Next.js版本orders接口对应
func InitOrderRoutes(router *gin.Engine) {
	// 初始化订单与退换货控制器
	orderController := &controllers.OrderController{}
	returnController := &controllers.ReturnController{}

	// 订单路由全部需要登录
	orderGroup := router.Group("/orders/", middleware.JWTAuthMiddleware())
	{
		orderGroup.POST("", orderController.OrderCreate) // 创建订单
		orderGroup.GET("", orderController.OrderList)    // 查询订单列表

		// 管理端批量改状态、待取件列表 - 静态路由要注册在:id之前
		orderGroup.PATCH("bulk", middleware.RequireRole(models.RoleAdmin), orderController.BulkUpdateStatus)
		orderGroup.GET("pending-pickups", middleware.RequireRole(models.RoleAdmin), orderController.PendingPickups)

		orderGroup.GET(":id", orderController.OrderDetail)                // 查询订单详情
		orderGroup.GET(":id/return", returnController.ReturnViewForOrder) // 查询订单的退换货申请
		orderGroup.POST(":id/cancel", orderController.OrderCancel)        // 取消订单

		// 管理端改状态
		orderGroup.POST(":id/status", middleware.RequireRole(models.RoleAdmin), orderController.ChangeStatus)

		// 自提两阶段 - 卖家标记备货，管理员安排取件
		orderGroup.POST(":id/pickup/mark", middleware.RequireRole(models.RoleSeller), orderController.PickupMark)
		orderGroup.POST(":id/pickup/assign", middleware.RequireRole(models.RoleAdmin), orderController.PickupAssign)
	}
}
