package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitStatsRoutes 初始化统计相关路由 - 仅管理员，结果走Redis缓存
func InitStatsRoutes(router *gin.Engine) {
	// 初始化统计控制器
	statsController := &controllers.StatsController{}

	statsGroup := router.Group("/stats/", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	{
		statsGroup.GET("brands", statsController.BrandStats)
		statsGroup.GET("orders", statsController.OrderStats)
	}
}
