package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"nextjs_to_go/config"
	"nextjs_to_go/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware JWT认证中间件
// 解析Bearer令牌并把用户ID和角色写入上下文，供后续RequireRole和控制器使用
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		// 尝试从Authorization头获取token
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			// 检查token格式
			authParts := strings.SplitN(authHeader, " ", 2)
			if len(authParts) == 2 && authParts[0] == "Bearer" {
				tokenString = authParts[1]
			}
		}

		// 如果Authorization头中没有有效的token，尝试从URL参数access_token获取
		if tokenString == "" {
			tokenString = c.Query("access_token")
		}

		// 如果两种方式都没有获取到token，返回未授权
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization token is required, either in header or as access_token query parameter"})
			c.Abort()
			return
		}

		// 解析token
		cfg := config.LoadConfig()
		token, claims, err := utils.ParseToken(tokenString, cfg)
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 获取用户ID
		if claims.Subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User ID not found in token"})
			c.Abort()
			return
		}

		var userID int
		if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid user ID in token"})
			c.Abort()
			return
		}

		// 将用户信息存储到上下文中
		c.Set("userID", userID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRole 角色校验中间件 - 必须在JWTAuthMiddleware之后使用
// 角色不在允许列表中时返回401，与Next.js版本的verifyToken行为一致
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "权限不足"})
		c.Abort()
	}
}

// CORSMiddleware 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

var (
	// 全局日志器实例
	accessLogger *utils.Logger
	loggerOnce   sync.Once
)

// 初始化日志器
func initLogger() {
	// 创建一个全局的访问日志记录器
	var err error
	accessLogger, err = utils.NewLogger("./logs", "access.log")
	if err != nil {
		fmt.Printf("初始化访问日志记录器失败: %v\n", err)
	}
}

// RequestLogMiddleware 请求日志中间件
func RequestLogMiddleware() gin.HandlerFunc {
	// 确保日志器只被初始化一次
	loggerOnce.Do(initLogger)

	return func(c *gin.Context) {
		// 获取客户端IP地址
		clientIP := c.ClientIP()

		// 记录请求信息和IP地址到文件
		if accessLogger != nil {
			if err := accessLogger.Access("IP: %s, 方法: %s, 路径: %s", clientIP, c.Request.Method, c.Request.URL.Path); err != nil {
				// 如果写入文件失败，继续打印到控制台
				fmt.Printf("[访问日志] IP: %s, 方法: %s, 路径: %s\n", clientIP, c.Request.Method, c.Request.URL.Path)
				fmt.Printf("写入日志文件失败: %v\n", err)
			}
		} else {
			// 如果日志器未初始化，继续打印到控制台
			fmt.Printf("[访问日志] IP: %s, 方法: %s, 路径: %s\n", clientIP, c.Request.Method, c.Request.URL.Path)
		}

		// 继续处理请求
		c.Next()
	}
}

// ErrorHandlerMiddleware 错误处理中间件
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// 处理错误
		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors {
				// 统一记录控制器挂到上下文上的错误
				if accessLogger != nil {
					accessLogger.Error("路径: %s, 错误: %v", c.Request.URL.Path, ginErr.Err)
				}
			}
		}
	}
}
