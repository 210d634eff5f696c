package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nextjs_to_go/db"
	"nextjs_to_go/models"

	"github.com/gin-gonic/gin"
)

// StatsController 统计控制器 - 聚合查询结果写入Redis缓存，减轻热点查询压力

type StatsController struct{}

// 统计缓存有效期
const statsCacheTTL = 5 * time.Minute

// brandCount 品牌聚合计数
type brandCount struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

// BrandStats 按品牌统计在售商品数 - 与Next.js版本brands聚合接口对应
func (sc *StatsController) BrandStats(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "stats:brands"

	// 优先读缓存
	if db.Redis != nil {
		if cached, err := db.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var counts []brandCount
			if err := json.Unmarshal([]byte(cached), &counts); err == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "brands": counts, "cached": true})
				return
			}
		}
	}

	var counts []brandCount
	if err := db.DB.Model(&models.Product{}).
		Select("brand, count(*) as count").
		Where("status = ? AND brand <> ''", models.ProductStatusOnline).
		Group("brand").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		log.Printf("品牌统计查询失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "品牌统计查询失败: " + err.Error()})
		return
	}

	// 写入缓存，失败只记录日志
	if db.Redis != nil {
		if data, err := json.Marshal(counts); err == nil {
			if err := db.Redis.Set(ctx, cacheKey, data, statsCacheTTL).Err(); err != nil {
				log.Printf("品牌统计写入缓存失败: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "brands": counts, "cached": false})
}

// orderStatusCount 订单状态聚合计数
type orderStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// OrderStats 按状态统计订单数 - 管理后台看板
func (sc *StatsController) OrderStats(c *gin.Context) {
	ctx := context.Background()
	cacheKey := "stats:orders"

	// 优先读缓存
	if db.Redis != nil {
		if cached, err := db.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var counts []orderStatusCount
			if err := json.Unmarshal([]byte(cached), &counts); err == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "statuses": counts, "cached": true})
				return
			}
		}
	}

	var counts []orderStatusCount
	if err := db.DB.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		log.Printf("订单统计查询失败: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "订单统计查询失败: " + err.Error()})
		return
	}

	// 写入缓存，失败只记录日志
	if db.Redis != nil {
		if data, err := json.Marshal(counts); err == nil {
			if err := db.Redis.Set(ctx, cacheKey, data, statsCacheTTL).Err(); err != nil {
				log.Printf("订单统计写入缓存失败: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "statuses": counts, "cached": false})
}
