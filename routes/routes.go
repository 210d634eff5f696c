package routes

import (
	"github.com/gin-gonic/gin"
)

// InitRoutes 初始化路由配置 - 与Next.js版本app/api目录结构对应
func InitRoutes(router *gin.Engine) {
	// 初始化用户相关路由
	InitUserRoutes(router)

	// 初始化商品相关路由
	InitProductRoutes(router)

	// 初始化购物车相关路由
	InitCartRoutes(router)

	// 初始化收货地址相关路由
	InitAddressRoutes(router)

	// 初始化优惠券相关路由
	InitCouponRoutes(router)

	// 初始化订单相关路由
	InitOrderRoutes(router)

	// 初始化退换货相关路由
	InitReturnRoutes(router)

	// 初始化评价相关路由
	InitReviewRoutes(router)

	// 初始化结算相关路由
	InitPayoutRoutes(router)

	// 初始化配送相关路由
	InitDeliveryRoutes(router)

	// 初始化统计相关路由
	InitStatsRoutes(router)

	// 测试路由
	router.GET("api/test/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Server is running"})
	})

	// 健康检查路由
	router.GET("api/health/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 404 路由
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "页面不存在"})
	})

	// 405 路由
	router.NoMethod(func(c *gin.Context) {
		c.JSON(405, gin.H{"error": "请求方法不允许"})
	})
}
