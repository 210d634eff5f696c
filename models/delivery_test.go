package models

import (
	"testing"
)

func TestDeriveDeliveryStatus(t *testing.T) {
	cases := []struct {
		orderStatus string
		want        string
	}{
		{OrderStatusPending, DeliveryStatusPending},
		{OrderStatusConfirmed, DeliveryStatusPending},
		{OrderStatusProcessing, DeliveryStatusPending},
		{OrderStatusReadyForPickup, DeliveryStatusDispatched},
		{OrderStatusShipped, DeliveryStatusInTransit},
		{OrderStatusDelivered, DeliveryStatusDelivered},
		{OrderStatusCancelled, DeliveryStatusFailed},
	}

	for _, tc := range cases {
		if got := DeriveDeliveryStatus(tc.orderStatus); got != tc.want {
			t.Errorf("订单状态%s推导配送状态错误: 期望%s, 实际%s", tc.orderStatus, tc.want, got)
		}
	}
}
