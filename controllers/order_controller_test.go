package controllers

import (
	"errors"
	"testing"
)

func TestApplyBulkStatusPerOrderResults(t *testing.T) {
	outcomes := map[string]string{
		"Y2026010100000001": BulkResultUpdated,
		"Y2026010100000002": BulkResultNotFound,
		"Y2026010100000003": BulkResultConflict,
		"Y2026010100000004": BulkResultUpdated,
	}
	orderIDs := []string{
		"Y2026010100000001",
		"Y2026010100000002",
		"Y2026010100000003",
		"Y2026010100000004",
	}

	results, updated, err := applyBulkStatus(orderIDs, func(orderID string) (string, error) {
		return outcomes[orderID], nil
	})
	if err != nil {
		t.Fatalf("批量更新失败: %v", err)
	}

	// 每个订单号恰好产生一条结果，顺序与请求一致，局部失败不被整体成功掩盖
	if len(results) != len(orderIDs) {
		t.Fatalf("结果条数错误: 期望%d, 实际%d", len(orderIDs), len(results))
	}
	for i, orderID := range orderIDs {
		if results[i]["order_id"] != orderID {
			t.Errorf("第%d条结果的订单号错误: 期望%s, 实际%v", i, orderID, results[i]["order_id"])
		}
		if results[i]["result"] != outcomes[orderID] {
			t.Errorf("订单%s的结果错误: 期望%s, 实际%v", orderID, outcomes[orderID], results[i]["result"])
		}
	}
	if updated != 2 {
		t.Errorf("成功条数错误: 期望2, 实际%d", updated)
	}
}

func TestApplyBulkStatusAbortsOnError(t *testing.T) {
	dbErr := errors.New("数据库连接中断")

	results, _, err := applyBulkStatus([]string{"Y1", "Y2", "Y3"}, func(orderID string) (string, error) {
		if orderID == "Y2" {
			return "", dbErr
		}
		return BulkResultUpdated, nil
	})

	if !errors.Is(err, dbErr) {
		t.Errorf("应当透传底层错误: %v", err)
	}
	if results != nil {
		t.Error("出错时不应返回部分结果")
	}
}
