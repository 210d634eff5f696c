package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// InitProductRoutes 初始化商品相关路由 - 与Next.js版本products接口对应
func InitProductRoutes(router *gin.Engine) {
	// 初始化商品控制器
	productController := &controllers.ProductController{}

	productGroup := router.Group("/products/")
	{
		// 公开路由 - 只展示在售商品
		productGroup.GET("", productController.ProductList)
		productGroup.GET(":id", productController.ProductDetail)

		// 卖家管理路由
		sellerGroup := productGroup.Group("", middleware.JWTAuthMiddleware(), middleware.RequireRole(models.RoleSeller, models.RoleAdmin))
		{
			sellerGroup.POST("", productController.ProductCreate)            // 创建商品
			sellerGroup.PUT(":id", productController.ProductUpdate)          // 修改商品
			sellerGroup.POST(":id/status", productController.ProductChangeStatus) // 上下架
		}
	}
}
