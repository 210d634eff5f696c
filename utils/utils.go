package utils

import (
	"fmt"
	"time"

	"nextjs_to_go/config"

	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims JWT令牌声明 - 在标准声明基础上附带用户角色
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateTokens 生成访问令牌和刷新令牌
func GenerateTokens(userID int, role string, cfg config.Config) (string, string, error) {
	// 生成访问令牌
	expirationTime := time.Now().Add(time.Duration(cfg.JWTConfig.AccessTokenTTL) * time.Hour)
	claims := &TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedAccessToken, err := accessToken.SignedString([]byte(cfg.JWTConfig.SecretKey))
	if err != nil {
		return "", "", err
	}

	// 生成刷新令牌
	refreshExpirationTime := time.Now().Add(time.Duration(cfg.JWTConfig.RefreshTokenTTL) * time.Hour)
	refreshClaims := &TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	signedRefreshToken, err := refreshToken.SignedString([]byte(cfg.JWTConfig.SecretKey))
	if err != nil {
		return "", "", err
	}

	return signedAccessToken, signedRefreshToken, nil
}

// ParseToken 解析JWT令牌
func ParseToken(tokenString string, cfg config.Config) (*jwt.Token, *TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTConfig.SecretKey), nil
	})
	if err != nil {
		return nil, nil, err
	}

	return token, claims, nil
}

// RefreshAccessToken 只刷新访问令牌 - 用于token refresh接口
func RefreshAccessToken(refreshTokenString string, cfg config.Config) (string, error) {
	token, claims, err := ParseToken(refreshTokenString, cfg)
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid refresh token")
	}

	// 获取用户ID
	var userID int
	fmt.Sscanf(claims.Subject, "%d", &userID)

	// 只生成新的访问令牌
	accessToken, _, err := GenerateTokens(userID, claims.Role, cfg)
	if err != nil {
		return "", err
	}

	return accessToken, nil
}

// FormatDateTime 格式化时间
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// ParseDateTime 解析时间字符串
func ParseDateTime(datetimeStr string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04:05", datetimeStr)
}

// Pagination 分页辅助函数 - 规范化页码和每页条数并返回偏移量
func Pagination(pageNum, pageSize int) (int, int) {
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 50 {
		pageSize = 50
	}
	offset := (pageNum - 1) * pageSize
	return offset, pageSize
}

// TotalPages 计算总页数
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
