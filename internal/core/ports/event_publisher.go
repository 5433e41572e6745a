package ports

import (
	"context"
	"time"
)

// OrderStepChanged is the event emitted whenever an order's lifecycle stage
// changes, whether by admin action or by the stale-order sweep.
type OrderStepChanged struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Step        string    `json:"step"`
	Percent     int       `json:"percent"`
	ChangedAt   time.Time `json:"changed_at"`
	Source      string    `json:"source"`
}

// Event sources.
const (
	StepChangeSourceAdmin = "admin"
	StepChangeSourceSweep = "stale-sweep"
)

// EventPublisher publishes domain events to the message broker. Publishing
// happens after the owning transaction commits; a publish failure is logged
// but never rolls the business change back.
type EventPublisher interface {
	// PublishOrderStepChanged emits a step change notification.
	PublishOrderStepChanged(ctx context.Context, event OrderStepChanged) error
}
