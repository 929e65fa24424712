package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{"PENDING", OrderStatusPending, false},
		{"CONFIRMED", OrderStatusConfirmed, false},
		{"PROCESSING", OrderStatusProcessing, false},
		{"SHIPPED", OrderStatusShipped, false},
		{"DELIVERED", OrderStatusDelivered, false},
		{"CANCELLED", OrderStatusCancelled, false},
		{"shipped", OrderStatusShipped, false},
		{"RETURNED", "", true},
		{"SHIPPEDD", "", true},
		{"", "", true},
		{"paid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOrderStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.True(t, OrderStatusCancelled.Terminal())

	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped} {
		assert.False(t, s.Terminal(), "%s should not be terminal", s)
	}
}
