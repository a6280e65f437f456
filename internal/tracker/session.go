package tracker

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
	"github.com/SIRETECH254/sire-payment-tracker/internal/mpesa"
	"github.com/sirupsen/logrus"
)

// FallbackFailureMessage is the synthesized terminal message used when the
// fallback status query itself cannot be completed.
const FallbackFailureMessage = "Could not verify payment status. You can retry the payment."

// Session tracks one payment from initiation to a terminal status. Updates
// from the channel, the fallback query and the seed fetch all funnel through
// apply, which serializes them under the session mutex and enforces the
// first-terminal-write-wins rule: once the status is terminal the session is
// frozen and every later signal is discarded.
type Session struct {
	ID         string
	PaymentID  string
	Method     models.PaymentMethod
	CheckoutID string

	query     QueryClient
	publisher Publisher
	history   HistoryRepo
	cache     StatusCache
	opts      Options
	log       *logrus.Entry

	mu             sync.Mutex
	status         models.PaymentStatus
	errorMessage   string
	connected      bool
	transportError string
	fallbackArmed  bool
	fallbackFired  bool
	stopped        bool
	source         models.ResolutionSource
	resolvedAt     time.Time
	timer          *time.Timer
	sub            Subscription
}

// Snapshot is the externally visible state of a session.
type Snapshot struct {
	SessionID        string                  `json:"session_id"`
	PaymentID        string                  `json:"payment_id"`
	Method           models.PaymentMethod    `json:"method"`
	CheckoutID       string                  `json:"checkout_id,omitempty"`
	Status           models.PaymentStatus    `json:"status"`
	ErrorMessage     string                  `json:"error_message,omitempty"`
	ChannelConnected bool                    `json:"channel_connected"`
	TransportError   string                  `json:"transport_error,omitempty"`
	FallbackArmed    bool                    `json:"fallback_armed"`
	FallbackFired    bool                    `json:"fallback_fired"`
	Resolved         bool                    `json:"resolved"`
	Source           models.ResolutionSource `json:"source,omitempty"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		SessionID:        s.ID,
		PaymentID:        s.PaymentID,
		Method:           s.Method,
		CheckoutID:       s.CheckoutID,
		Status:           s.status,
		ErrorMessage:     s.errorMessage,
		ChannelConnected: s.connected,
		TransportError:   s.transportError,
		FallbackArmed:    s.fallbackArmed,
		FallbackFired:    s.fallbackFired,
		Resolved:         s.status.IsTerminal(),
		Source:           s.source,
	}
}

// Status returns the current resolved status.
func (s *Session) Status() models.PaymentStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// apply is the single write path for status updates. It returns false when
// the update was discarded: the session is stopped, already terminal, or the
// incoming status is identical noise. A terminal update freezes the session,
// cancels the fallback timer, drops the channel subscription and fires the
// resolution side effects exactly once.
func (s *Session) apply(status models.PaymentStatus, message string, source models.ResolutionSource) bool {
	s.mu.Lock()
	if s.stopped || s.status.IsTerminal() {
		s.mu.Unlock()
		return false
	}

	s.status = status
	if status == models.StatusFailed || status == models.StatusCancelled {
		s.errorMessage = message
	} else {
		s.errorMessage = ""
	}

	if !status.IsTerminal() {
		s.mu.Unlock()
		return true
	}

	s.source = source
	s.resolvedAt = time.Now().UTC()
	s.clearTimerLocked()
	sub := s.sub
	s.sub = nil
	record := s.recordLocked()
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}

	s.log.WithFields(logrus.Fields{
		"status": status,
		"source": source,
	}).Info("payment tracking resolved")

	go s.emitResolution(record)

	return true
}

func (s *Session) recordLocked() models.TrackingRecord {
	return models.TrackingRecord{
		SessionID:    s.ID,
		PaymentID:    s.PaymentID,
		Method:       s.Method,
		CheckoutID:   s.CheckoutID,
		Status:       s.status,
		ErrorMessage: s.errorMessage,
		Source:       s.source,
		ResolvedAt:   s.resolvedAt,
	}
}

// emitResolution publishes, persists and caches the terminal outcome.
// Best-effort: failures are logged and never reopen the session.
func (s *Session) emitResolution(record models.TrackingRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.publisher != nil {
		event := models.StatusResolvedEvent{
			SessionID:    record.SessionID,
			PaymentID:    record.PaymentID,
			Method:       string(record.Method),
			Status:       string(record.Status),
			ErrorMessage: record.ErrorMessage,
			Source:       record.Source,
			ResolvedAt:   record.ResolvedAt,
		}
		if err := s.publisher.Publish(ctx, models.StatusResolvedEventTopic, event); err != nil {
			s.log.Errorf("error publishing resolved event %s", err.Error())
		}
	}

	if s.history != nil {
		if err := s.history.Create(ctx, &record); err != nil {
			s.log.Errorf("error persisting tracking record %s", err.Error())
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, record.PaymentID, record); err != nil {
			s.log.Errorf("error caching resolved status %s", err.Error())
		}
	}
}

// handleEvent is the realtime channel callback. It never returns an error to
// the transport: malformed payloads are absorbed, mismatched payment ids are
// ignored.
func (s *Session) handleEvent(event models.ChannelEvent) {
	switch event.Name {
	case models.EventConnect:
		s.mu.Lock()
		s.connected = true
		s.transportError = ""
		s.mu.Unlock()
		go s.refreshFromServer()
	case models.EventDisconnect:
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()
	case models.EventCallbackReceived:
		s.handleCallbackReceived(event.Payload)
	case models.EventPaymentUpdated:
		s.handlePaymentUpdated(event.Payload)
	default:
		s.log.Debugf("ignoring channel event %s", event.Name)
	}
}

func (s *Session) handleCallbackReceived(payload json.RawMessage) {
	// Gateway callbacks are an M-Pesa concern.
	if s.Method != models.MethodMpesa {
		return
	}

	var event models.CallbackReceivedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		s.log.Errorf("error parsing callback event %s", err.Error())
		return
	}
	if event.PaymentID != "" && event.PaymentID != s.PaymentID {
		return
	}

	code := mpesa.CodeFromJSON(event.CODE, event.Code)
	if code == nil {
		s.log.Warn("callback event carried no result code")
	}

	resolution := mpesa.Resolve(code, event.Message)
	s.apply(resolution.Status, resolution.Message, models.SourceChannel)
}

func (s *Session) handlePaymentUpdated(payload json.RawMessage) {
	var event models.PaymentUpdatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		s.log.Errorf("error parsing payment updated event %s", err.Error())
		return
	}
	if event.PaymentID != s.PaymentID {
		return
	}

	if s.Method == models.MethodPaystack {
		switch event.Status {
		case "completed", "PAID":
			s.apply(models.StatusCompleted, "", models.SourceChannel)
		case "failed", "FAILED":
			message := event.Message
			if message == "" {
				message = "Card payment failed"
			}
			s.apply(models.StatusFailed, message, models.SourceChannel)
		default:
			s.apply(models.StatusProcessing, "", models.SourceChannel)
		}
		return
	}

	s.apply(models.ParseStatus(event.Status), event.Message, models.SourceChannel)
}

// refreshFromServer pulls the payment record and applies its status as one
// more input source. Fetch errors are noise, not failures: the channel and
// the fallback poll remain live.
func (s *Session) refreshFromServer() {
	s.mu.Lock()
	done := s.stopped || s.status.IsTerminal()
	s.mu.Unlock()
	if done {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.FallbackQueryTimeout)
	defer cancel()

	payment, err := s.query.GetPayment(ctx, s.PaymentID)
	if err != nil {
		s.log.Errorf("error fetching payment %s", err.Error())
		return
	}

	s.apply(models.ParseStatus(payment.Status), "", models.SourceFetch)
}

func (s *Session) armFallback() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.fallbackArmed || s.fallbackFired {
		return
	}
	s.fallbackArmed = true
	s.timer = time.AfterFunc(s.opts.FallbackTimeout, s.runFallback)
}

// runFallback fires at most once per session. Whatever the query returns,
// the timer never re-arms; a failed query synthesizes a terminal failure.
func (s *Session) runFallback() {
	s.mu.Lock()
	if s.stopped || s.status.IsTerminal() || s.fallbackFired {
		s.mu.Unlock()
		return
	}
	s.fallbackArmed = false
	s.fallbackFired = true
	s.mu.Unlock()

	s.log.Info("fallback: querying gateway payment status")

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.FallbackQueryTimeout)
	defer cancel()

	result, err := s.query.QueryMpesaStatus(ctx, s.CheckoutID)
	if err != nil {
		s.log.Errorf("fallback query error %s", err.Error())
		s.apply(models.StatusFailed, FallbackFailureMessage, models.SourceFallback)
		return
	}

	resolution := mpesa.Resolve(result.Code, result.Description)
	s.apply(resolution.Status, resolution.Message, models.SourceFallback)
}

func (s *Session) attachSubscription(sub Subscription) {
	s.mu.Lock()
	if s.stopped || s.status.IsTerminal() {
		s.mu.Unlock()
		sub.Unsubscribe()
		return
	}
	s.sub = sub
	s.mu.Unlock()
}

func (s *Session) setTransportError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transportError = message
	s.connected = false
}

func (s *Session) clearTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.fallbackArmed = false
}

// stop releases the timer and the channel subscription. Idempotent; any
// in-flight fallback result arriving afterwards is discarded by apply.
func (s *Session) stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.clearTimerLocked()
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}
