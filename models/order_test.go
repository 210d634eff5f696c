package models

import (
	"testing"
)

func TestApplyStatusAppendsTimeline(t *testing.T) {
	order := Order{Status: OrderStatusPending}

	// 每次状态变更必须恰好追加一条时间线
	if err := order.ApplyStatus(OrderStatusConfirmed, "订单已确认", "admin"); err != nil {
		t.Fatalf("状态变更失败: %v", err)
	}

	if order.Status != OrderStatusConfirmed {
		t.Errorf("订单状态错误: 期望%s, 实际%s", OrderStatusConfirmed, order.Status)
	}
	if len(order.Timeline) != 1 {
		t.Fatalf("时间线条目数错误: 期望1, 实际%d", len(order.Timeline))
	}

	entry := order.Timeline[0]
	if entry.Status != OrderStatusConfirmed {
		t.Errorf("时间线状态错误: 期望%s, 实际%s", OrderStatusConfirmed, entry.Status)
	}
	if entry.Operator != "admin" {
		t.Errorf("时间线操作人错误: 期望admin, 实际%s", entry.Operator)
	}
	if entry.Timestamp.IsZero() {
		t.Error("时间线时间戳不能为空")
	}

	// 再变更一次，时间线应为两条且末条与当前状态一致
	if err := order.ApplyStatus(OrderStatusShipped, "订单已发货", "admin"); err != nil {
		t.Fatalf("状态变更失败: %v", err)
	}
	if len(order.Timeline) != 2 {
		t.Fatalf("时间线条目数错误: 期望2, 实际%d", len(order.Timeline))
	}
	if order.Timeline[len(order.Timeline)-1].Status != order.Status {
		t.Error("时间线末条状态必须与订单当前状态一致")
	}
}

func TestApplyStatusRejectsInvalidStatus(t *testing.T) {
	order := Order{Status: OrderStatusPending}

	if err := order.ApplyStatus("unknown", "非法状态", "admin"); err == nil {
		t.Error("非法状态应当返回错误")
	}

	// 失败的变更不允许留下任何痕迹
	if order.Status != OrderStatusPending {
		t.Errorf("失败变更不应修改订单状态: %s", order.Status)
	}
	if len(order.Timeline) != 0 {
		t.Errorf("失败变更不应追加时间线: %d条", len(order.Timeline))
	}
}

func TestOrderItemListScanValue(t *testing.T) {
	items := OrderItemList{
		{ProductID: "G2026010112345678", SellerID: 3, Name: "儿童连体衣", Price: 199.00, Quantity: 2, Status: OrderStatusPending},
		{ProductID: "G2026010187654321", SellerID: 5, Name: "防晒帽", Price: 59.00, Quantity: 1, Status: OrderStatusPending},
	}

	value, err := items.Value()
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	var restored OrderItemList
	if err := restored.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}

	if len(restored) != 2 {
		t.Fatalf("商品项数量错误: 期望2, 实际%d", len(restored))
	}
	if restored[0].ProductID != items[0].ProductID || restored[0].Quantity != items[0].Quantity {
		t.Errorf("商品项内容不一致: %+v", restored[0])
	}
}

func TestOrderItemListValueEmpty(t *testing.T) {
	var items OrderItemList

	value, err := items.Value()
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	if value.(string) != "[]" {
		t.Errorf("空列表应序列化为[]: %s", value)
	}
}

func TestContainsSeller(t *testing.T) {
	items := OrderItemList{
		{ProductID: "G1", SellerID: 3},
		{ProductID: "G2", SellerID: 5},
	}

	if !items.ContainsSeller(3) {
		t.Error("应当包含卖家3")
	}
	if items.ContainsSeller(7) {
		t.Error("不应包含卖家7")
	}
}

func TestCanCancel(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{OrderStatusPending, true},
		{OrderStatusConfirmed, true},
		{OrderStatusProcessing, false},
		{OrderStatusReadyForPickup, false},
		{OrderStatusShipped, false},
		{OrderStatusDelivered, false},
		{OrderStatusCancelled, false},
	}

	for _, tc := range cases {
		order := Order{Status: tc.status}
		if order.CanCancel() != tc.want {
			t.Errorf("状态%s的可取消判断错误: 期望%v", tc.status, tc.want)
		}
	}
}

func TestPendingPickupCandidate(t *testing.T) {
	statuses := []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusProcessing,
		OrderStatusReadyForPickup,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}

	// 遍历全部标记与状态组合：只有"卖家已标记、管理员未指派、订单待揽收"才是候选，
	// 尤其是管理员已指派的订单在任何组合下都不能再出现在待揽收列表里
	for _, status := range statuses {
		for _, marked := range []bool{true, false} {
			for _, assigned := range []bool{true, false} {
				order := Order{
					Status:              status,
					PickupSellerMarked:  marked,
					PickupAdminAssigned: assigned,
				}

				want := marked && !assigned && status == OrderStatusReadyForPickup
				if order.PendingPickupCandidate() != want {
					t.Errorf("状态%s 卖家标记%v 管理员指派%v 的待揽收判断错误: 期望%v",
						status, marked, assigned, want)
				}
			}
		}
	}
}

func TestVersionedUpdatesBumpsVersion(t *testing.T) {
	order := Order{Status: OrderStatusPending, Version: 3}

	if err := order.ApplyStatus(OrderStatusConfirmed, "订单已确认", "admin"); err != nil {
		t.Fatalf("状态变更失败: %v", err)
	}

	updates := order.VersionedUpdates()
	if updates["version"] != 4 {
		t.Errorf("版本号应加一: 期望4, 实际%v", updates["version"])
	}
	if updates["status"] != OrderStatusConfirmed {
		t.Errorf("写回状态错误: %v", updates["status"])
	}
	if len(updates["timeline"].(Timeline)) != 1 {
		t.Error("写回内容应包含追加后的时间线")
	}
}

func TestVersionedUpdatesStaleWriteConflict(t *testing.T) {
	// 两个操作加载到同一版本的订单快照
	stored := Order{Status: OrderStatusPending, Version: 3}
	first := stored
	second := stored

	if err := first.ApplyStatus(OrderStatusConfirmed, "订单已确认", "admin"); err != nil {
		t.Fatalf("状态变更失败: %v", err)
	}
	if err := second.ApplyStatus(OrderStatusCancelled, "订单已取消", "admin"); err != nil {
		t.Fatalf("状态变更失败: %v", err)
	}

	// 第一个提交成功后，存储中的版本号推进到写回值
	stored.Version = first.VersionedUpdates()["version"].(int)

	// 第二个操作仍携带加载时的旧版本号，CAS的WHERE条件不再匹配，
	// 这次写入影响0行，更新不会丢失而是上报冲突
	if second.Version == stored.Version {
		t.Error("过期快照的版本号不应与已提交的版本号相同")
	}
	if second.VersionedUpdates()["version"] != stored.Version {
		t.Error("同版本快照必然写向同一目标版本，后提交者无法通过版本条件")
	}
}
