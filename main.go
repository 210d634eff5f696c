package main

import (
	"log"

	"nextjs_to_go/config"
	"nextjs_to_go/db"
	"nextjs_to_go/middleware"
	"nextjs_to_go/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	appConfig := config.LoadConfig()

	// 初始化数据库
	db.InitDB(appConfig)
	// 初始化Redis缓存
	db.InitRedis(appConfig)
	// 运行数据库迁移，同步表结构变更
	db.RunMigrations()

	// 创建Gin引擎
	router := gin.Default()

	// 设置中间件
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())

	// 设置静态文件服务
	router.Static("/static", "./staticfiles")
	router.Static("/media", "./media")

	// 初始化路由
	routes.InitRoutes(router)

	// 启动服务器
	log.Printf("Server starting on port %s\n", appConfig.ServerPort)
	if err := router.Run(":" + appConfig.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
