package models

import "time"

const (
	StatusResolvedEventTopic = "payments.status.resolved"
)

// StatusResolvedEvent announces that a tracking session reached a terminal
// status. Consumed by notification and reporting services.
type StatusResolvedEvent struct {
	SessionID    string           `json:"session_id"`
	PaymentID    string           `json:"payment_id"`
	Method       string           `json:"method"`
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Source       ResolutionSource `json:"source"`
	ResolvedAt   time.Time        `json:"resolved_at"`
}
