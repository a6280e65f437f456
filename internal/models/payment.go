package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string
type PaymentMethod string

const (
	StatusPending    PaymentStatus = "pending"
	StatusProcessing PaymentStatus = "processing"
	StatusCompleted  PaymentStatus = "completed"
	StatusFailed     PaymentStatus = "failed"
	StatusCancelled  PaymentStatus = "cancelled"

	MethodMpesa    PaymentMethod = "mpesa"
	MethodPaystack PaymentMethod = "paystack"
	MethodOther    PaymentMethod = "other"
)

// ParseStatus normalizes a server-side status string. Unknown values map to
// pending so a stale or odd backend value never strands a session.
func ParseStatus(s string) PaymentStatus {
	status := PaymentStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return StatusPending
	}
	return status
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further update may replace this status.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodMpesa, MethodPaystack, MethodOther:
		return true
	default:
		return false
	}
}

// Payment is the backend's payment record as returned by GET /payments/{id}.
// Only the fields the tracker reads are mapped.
type Payment struct {
	ID                   string  `json:"_id"`
	PaymentNumber        string  `json:"paymentNumber"`
	Amount               float64 `json:"amount"`
	Currency             string  `json:"currency"`
	Status               string  `json:"status"`
	PaymentMethod        string  `json:"paymentMethod"`
	TransactionReference string  `json:"transactionReference,omitempty"`
}

// MpesaStatusResult is the normalized outcome of the fallback status query.
// Code is nil when the response carried no decodable result code.
type MpesaStatusResult struct {
	Code        *int
	Description string
}

// ResolutionSource identifies which input resolved a session.
type ResolutionSource string

const (
	SourceChannel  ResolutionSource = "channel"
	SourceFallback ResolutionSource = "fallback"
	SourceFetch    ResolutionSource = "fetch"
)

// TrackingRecord is the persisted outcome of one resolved tracking session.
type TrackingRecord struct {
	ID           string           `json:"id"`
	SessionID    string           `json:"session_id"`
	PaymentID    string           `json:"payment_id"`
	Method       PaymentMethod    `json:"method"`
	CheckoutID   string           `json:"checkout_id,omitempty"`
	Status       PaymentStatus    `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Source       ResolutionSource `json:"source"`
	ResolvedAt   time.Time        `json:"resolved_at"`
}

func (r *TrackingRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	return
}
