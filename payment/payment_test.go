package payment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() *MockGateway {
	g := NewMockGateway()
	g.Delay = 0
	return g
}

func TestProcessSuccessRateNearNinetyPercent(t *testing.T) {
	g := newTestGateway()

	const trials = 1000
	successes := 0
	for i := 0; i < trials; i++ {
		result := g.Process(Request{
			Amount:        31.0,
			Currency:      "PLN",
			OrderID:       "order-1",
			CustomerEmail: "jan@example.pl",
		})
		if result.Success {
			successes++
			assert.True(t, strings.HasPrefix(result.PaymentID, "mock_payment_"))
			assert.Contains(t, result.RedirectURL, result.PaymentID)
			assert.Empty(t, result.Error)
		} else {
			assert.Empty(t, result.PaymentID)
			assert.Empty(t, result.RedirectURL)
			assert.NotEmpty(t, result.Error)
		}
	}

	// 0.9 ± generous sampling tolerance.
	assert.Greater(t, successes, 850, "success rate far below 90%%: %d/%d", successes, trials)
	assert.Less(t, successes, 950, "success rate far above 90%%: %d/%d", successes, trials)
}

func TestProcessIssuesUniqueReferences(t *testing.T) {
	g := newTestGateway()
	g.SuccessRate = 1.0

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		result := g.Process(Request{OrderID: "order-1"})
		require.True(t, result.Success)
		assert.False(t, seen[result.PaymentID], "duplicate payment reference %s", result.PaymentID)
		seen[result.PaymentID] = true
	}
}

func TestVerifyAcceptsOnlyMockReferences(t *testing.T) {
	g := newTestGateway()

	assert.True(t, g.Verify("mock_payment_1712000000000_ab12cd34"))
	assert.False(t, g.Verify("pi_3MtwBwLkdIwHu7ix28a3tqPa"))
	assert.False(t, g.Verify(""))
}
