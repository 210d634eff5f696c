package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DBConfig 数据库配置
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// JWTConfig JWT令牌配置
type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  int // 访问令牌有效期（小时）
	RefreshTokenTTL int // 刷新令牌有效期（小时）
}

// RedisConfig Redis缓存配置
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SMSConfig 阿里云短信配置
type SMSConfig struct {
	AccessKeyID         string
	AccessKeySecret     string
	SignName            string
	TemplateCode        string
	ShippedTemplateCode string // 发货通知短信模板
}

// Config 应用配置
type Config struct {
	DBConfig    DBConfig
	JWTConfig   JWTConfig
	RedisConfig RedisConfig
	SMSConfig   SMSConfig
	ServerPort  string
}

// LoadConfig 加载应用配置 - 优先读取.env文件，其次读取环境变量
func LoadConfig() Config {
	// .env文件不存在时忽略错误，直接使用环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到.env文件，使用系统环境变量")
	}

	return Config{
		DBConfig: DBConfig{
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "marketplace"),
		},
		JWTConfig: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET_KEY", "marketplace-dev-secret"),
			AccessTokenTTL:  getEnvInt("JWT_ACCESS_TOKEN_TTL", 2),
			RefreshTokenTTL: getEnvInt("JWT_REFRESH_TOKEN_TTL", 24*7),
		},
		RedisConfig: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		SMSConfig: SMSConfig{
			AccessKeyID:         getEnv("SMS_ACCESS_KEY_ID", ""),
			AccessKeySecret:     getEnv("SMS_ACCESS_KEY_SECRET", ""),
			SignName:            getEnv("SMS_SIGN_NAME", ""),
			TemplateCode:        getEnv("SMS_TEMPLATE_CODE", ""),
			ShippedTemplateCode: getEnv("SMS_SHIPPED_TEMPLATE_CODE", ""),
		},
		ServerPort: getEnv("SERVER_PORT", "8088"),
	}
}

// getEnv 读取环境变量，不存在时返回默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 读取整数类型环境变量，解析失败时返回默认值
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("环境变量%s格式错误，使用默认值%d: %v", key, defaultValue, err)
		return defaultValue
	}
	return intValue
}
