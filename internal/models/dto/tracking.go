package dto

import (
	"fmt"
	"strings"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
)

type TrackingRequest struct {
	PaymentID  string `json:"payment_id"`
	Method     string `json:"method"`
	CheckoutID string `json:"checkout_id,omitempty"`
}

func (r *TrackingRequest) Sanitize() {
	r.PaymentID = strings.TrimSpace(r.PaymentID)
	r.CheckoutID = strings.TrimSpace(r.CheckoutID)

	r.Method = strings.ToLower(strings.TrimSpace(r.Method))
}

func (r *TrackingRequest) Validate() error {
	if r.PaymentID == "" {
		return fmt.Errorf("payment ID is required")
	}
	if !models.PaymentMethod(r.Method).IsValid() {
		return fmt.Errorf("invalid payment method: %s", r.Method)
	}

	return nil
}
