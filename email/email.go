// Package email defines the outbound-notification boundary. Every send is
// best-effort: callers log a failure and never surface it to the shopper.
package email

import (
	"fmt"
	"log"
	"time"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers transactional mail. MockSender is replaced by a real SMTP
// or provider client without touching callers.
type Sender interface {
	SendOrderConfirmation(to, orderID string, total float64) error
	SendOrderStatusUpdate(to, orderID, status string) error
}

// MockSender simulates delivery latency, logs the message and always
// succeeds.
type MockSender struct {
	Delay time.Duration
}

func NewMockSender() *MockSender {
	return &MockSender{Delay: 500 * time.Millisecond}
}

func (s *MockSender) send(msg Message) error {
	log.Printf("📧 Mock email to %s: %q (%d bytes of HTML)", msg.To, msg.Subject, len(msg.HTML))
	time.Sleep(s.Delay)
	return nil
}

func (s *MockSender) SendOrderConfirmation(to, orderID string, total float64) error {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #ec4899;">Dziękujemy za zamówienie!</h2>
			<p>Twoje zamówienie <strong>#%s</strong> zostało przyjęte.</p>
			<p>Łączna kwota: <strong>%.2f zł</strong></p>
			<p>Wkrótce otrzymasz informacje o statusie zamówienia.</p>
			<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
			<p style="color: #666; font-size: 12px;">Pan Żelek - Najlepsze żelki w Polsce</p>
		</div>`, orderID, total)

	return s.send(Message{
		To:      to,
		Subject: fmt.Sprintf("Potwierdzenie zamówienia #%s", orderID),
		HTML:    html,
	})
}

var statusMessages = map[string]string{
	"CONFIRMED":  "Twoje zamówienie zostało potwierdzone",
	"PROCESSING": "Twoje zamówienie jest w trakcie przygotowania",
	"SHIPPED":    "Twoje zamówienie zostało wysłane",
	"DELIVERED":  "Twoje zamówienie zostało dostarczone",
	"CANCELLED":  "Twoje zamówienie zostało anulowane",
}

func (s *MockSender) SendOrderStatusUpdate(to, orderID, status string) error {
	text, ok := statusMessages[status]
	if !ok {
		text = status
	}

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2 style="color: #ec4899;">Aktualizacja zamówienia</h2>
			<p>Status zamówienia <strong>#%s</strong> został zmieniony.</p>
			<p><strong>%s</strong></p>
			<hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
			<p style="color: #666; font-size: 12px;">Pan Żelek - Najlepsze żelki w Polsce</p>
		</div>`, orderID, text)

	return s.send(Message{
		To:      to,
		Subject: fmt.Sprintf("Aktualizacja zamówienia #%s", orderID),
		HTML:    html,
	})
}
