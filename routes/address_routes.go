package routes

import (
	"nextjs_to_go/controllers"
	"nextjs_to_go/middleware"

	"github.com/gin-gonic/gin"
)

// InitAddressRoutes 初始化收货地址相关路由 - 与Next.js版本addresses接口对应
func InitAddressRoutes(router *gin.Engine) {
	// 初始化地址控制器
	addressController := &controllers.AddressController{}

	addressGroup := router.Group("/addresses/", middleware.JWTAuthMiddleware())
	{
		addressGroup.GET("", addressController.AddressList)       // 查询地址列表
		addressGroup.POST("", addressController.AddressCreate)    // 新增地址
		addressGroup.PUT(":id", addressController.AddressUpdate)  // 修改地址
		addressGroup.DELETE(":id", addressController.AddressDelete) // 删除地址
	}
}
