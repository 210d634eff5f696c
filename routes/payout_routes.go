package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitPayoutRoutes 初始化结算相关路由 - 与Next.js版本payouts接口对应
func InitPayoutRoutes(router *gin.Engine) {
	// 初始化结算控制器
	payoutController := &controllers.PayoutController{}

	payoutGroup := router.Group("/payouts/", middleware.JWTAuthMiddleware())
	{
		// 管理员、卖家查询结算单列表
		payoutGroup.GET("", middleware.RequireRole(models.RoleAdmin, models.RoleSeller), payoutController.PayoutList)

		// 管理员生成结算单、流转状态
		payoutGroup.POST("generate", middleware.RequireRole(models.RoleAdmin), payoutController.PayoutGenerate)
		payoutGroup.POST(":id/status", middleware.RequireRole(models.RoleAdmin), payoutController.PayoutChangeStatus)

		// 导出结算明细Excel
		payoutGroup.GET(":id/export", middleware.RequireRole(models.RoleAdmin, models.RoleSeller), payoutController.PayoutExport)
	}
}
