package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"

	"github.com/gin-gonic/gin"
)

// InitCartRoutes 初始化购物车相关路由 - 与Next.js版本cart接口对应
func InitCartRoutes(router *gin.Engine) {
	// 初始化购物车控制器
	cartController := &controllers.CartController{}

	cartGroup := router.Group("/cart/", middleware.JWTAuthMiddleware())
	{
		cartGroup.GET("", cartController.CartGet)                          // 查询购物车
		cartGroup.POST("items", cartController.CartAddItem)                // 添加商品
		cartGroup.DELETE("items/:product_id", cartController.CartRemoveItem) // 移除商品
		cartGroup.DELETE("", cartController.CartClear)                     // 清空购物车
	}
}
