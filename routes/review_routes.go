package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitReviewRoutes 初始化评价相关路由 - 与Next.js版本reviews接口对应
func InitReviewRoutes(router *gin.Engine) {
	// 初始化评价控制器
	reviewController := &controllers.ReviewController{}

	reviewGroup := router.Group("/reviews/", middleware.JWTAuthMiddleware())
	{
		reviewGroup.POST("", reviewController.ReviewCreate) // 买家提交评价
		reviewGroup.GET("", reviewController.ReviewList)    // 查询评价列表

		// 审核与回复 - 管理员或商品归属卖家
		reviewGroup.PATCH(":id/moderate", middleware.RequireRole(models.RoleAdmin, models.RoleSeller), reviewController.ReviewModerate)

		// 有用投票
		reviewGroup.POST(":id/helpful", reviewController.ReviewVote)
	}
}
