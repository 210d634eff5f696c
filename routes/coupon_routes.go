package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitCouponRoutes 初始化优惠券相关路由
func InitCouponRoutes(router *gin.Engine) {
	// 初始化优惠券控制器
	couponController := &controllers.CouponController{}

	couponGroup := router.Group("/coupons/", middleware.JWTAuthMiddleware())
	{
		// 登录用户校验优惠券
		couponGroup.POST("check", couponController.CouponCheck)

		// 管理员管理优惠券
		couponGroup.POST("", middleware.RequireRole(models.RoleAdmin), couponController.CouponCreate)
		couponGroup.GET("", middleware.RequireRole(models.RoleAdmin), couponController.CouponList)
		couponGroup.POST(":id/toggle", middleware.RequireRole(models.RoleAdmin), couponController.CouponToggle)
	}
}
