package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockSenderAlwaysSucceeds(t *testing.T) {
	s := &MockSender{Delay: 0}

	assert.NoError(t, s.SendOrderConfirmation("jan@example.pl", "order-1", 31.0))
	assert.NoError(t, s.SendOrderStatusUpdate("jan@example.pl", "order-1", "SHIPPED"))
}

func TestStatusUpdateHandlesUnknownStatus(t *testing.T) {
	s := &MockSender{Delay: 0}

	// Unknown statuses fall back to the raw value instead of failing.
	assert.NoError(t, s.SendOrderStatusUpdate("jan@example.pl", "order-1", "SOMETHING_ELSE"))
}
