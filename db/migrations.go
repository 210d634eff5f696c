package db

import (
	"fmt"
	"log"

	"nextjs_to_go/models"
)

// RunMigrations 运行数据库迁移
// 此函数用于同步所有模型的数据库结构，并执行历史数据修复
func RunMigrations() {
	log.Println("开始运行数据库迁移...")

	// 同步所有模型
	modelsToMigrate := []interface{}{
		&models.User{},
		&models.Seller{},
		&models.Product{},
		&models.Order{},
		&models.Delivery{},
		&models.ReturnRequest{},
		&models.Payout{},
		&models.Review{},
		&models.Coupon{},
		&models.Cart{},
		&models.Address{},
	}

	// 循环同步每个模型
	for _, model := range modelsToMigrate {
		modelName := fmt.Sprintf("%T", model)
		if err := DB.AutoMigrate(model); err != nil {
			log.Printf("同步%v模型结构失败: %v", modelName, err)
		} else {
			log.Printf("%v 模型结构同步成功", modelName)
		}
	}

	// 修复历史订单的时间线缺口
	backfillOrderTimelines()

	log.Println("数据库迁移完成！")
}

// backfillOrderTimelines 为历史订单补齐时间线
// 早期版本的状态变更没有同步写时间线，导致部分订单时间线末条与当前状态不一致，
// 这里为这类订单补写一条同步条目。新代码统一走Order.ApplyStatus，不会再产生缺口
func backfillOrderTimelines() {
	log.Println("开始检查订单时间线缺口...")

	var orders []models.Order
	if err := DB.Find(&orders).Error; err != nil {
		log.Printf("查询订单失败，跳过时间线修复: %v", err)
		return
	}

	fixed := 0
	for _, order := range orders {
		// 时间线末条与当前状态一致则无需修复
		if len(order.Timeline) > 0 && order.Timeline[len(order.Timeline)-1].Status == order.Status {
			continue
		}

		if err := order.ApplyStatus(order.Status, "历史数据修复：补写状态同步条目", "system"); err != nil {
			log.Printf("订单%s时间线修复失败: %v", order.OrderID, err)
			continue
		}

		if err := DB.Model(&models.Order{}).Where("order_id = ?", order.OrderID).
			Updates(map[string]interface{}{"timeline": order.Timeline, "status": order.Status}).Error; err != nil {
			log.Printf("订单%s时间线写入失败: %v", order.OrderID, err)
			continue
		}
		fixed++
	}

	log.Printf("订单时间线检查完成，修复%d条", fixed)
}
