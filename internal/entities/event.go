package entities

import "time"

const (
	EventOrderCreated    = "order.created"
	EventPaymentVerified = "payment.verified"
)

type OutboxEvent struct {
	ID        int64
	EventID   string
	Type      string
	Key       string
	Payload   []byte
	CreatedAt time.Time
	SentAt    *time.Time
}
