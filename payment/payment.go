// Package payment defines the payment-provider boundary. MockGateway stands
// in for a real processor (Przelewy24, Stripe); swapping in a real client
// must not touch any caller.
package payment

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Request struct {
	Amount        float64
	Currency      string
	OrderID       string
	CustomerEmail string
	CustomerName  string
	Description   string
}

type Result struct {
	Success     bool   `json:"success"`
	PaymentID   string `json:"paymentId,omitempty"`
	RedirectURL string `json:"redirectUrl,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Gateway processes payments. A failed or errored payment must never void an
// already-created order; callers report the Result and move on.
type Gateway interface {
	Process(req Request) Result
	Verify(paymentID string) bool
}

const mockRefPrefix = "mock_payment_"

// MockGateway simulates an asynchronous processor: artificial latency, then
// success with probability SuccessRate.
type MockGateway struct {
	Delay       time.Duration
	SuccessRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockGateway() *MockGateway {
	return &MockGateway{
		Delay:       time.Second,
		SuccessRate: 0.9,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *MockGateway) roll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}

func (g *MockGateway) Process(req Request) Result {
	log.Printf("💳 Mock payment processing: order=%s amount=%.2f %s", req.OrderID, req.Amount, req.Currency)
	time.Sleep(g.Delay)

	if g.roll() >= g.SuccessRate {
		return Result{Success: false, Error: "Mock payment failed (simulated)"}
	}

	paymentID := fmt.Sprintf("%s%d_%s", mockRefPrefix, time.Now().UnixMilli(), uuid.NewString()[:8])
	return Result{
		Success:     true,
		PaymentID:   paymentID,
		RedirectURL: "/payment/success?paymentId=" + paymentID,
	}
}

// Verify accepts every reference this mock could have issued.
func (g *MockGateway) Verify(paymentID string) bool {
	log.Printf("💳 Mock payment verification: %s", paymentID)
	time.Sleep(g.Delay / 2)
	return strings.HasPrefix(paymentID, mockRefPrefix)
}
