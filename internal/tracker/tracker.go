package tracker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// QueryClient defines the payments API calls the tracker issues: the seed
// fetch of the payment record and the M-Pesa fallback status query.
type QueryClient interface {
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	QueryMpesaStatus(ctx context.Context, checkoutID string) (*models.MpesaStatusResult, error)
}

// RealtimeChannel delivers named payment events to a per-payment handler.
// The transport owns its own reconnection; the tracker only observes
// connect/disconnect.
type RealtimeChannel interface {
	Subscribe(paymentID string, handler func(models.ChannelEvent)) (Subscription, error)
}

// Subscription is one active registration on the realtime channel.
type Subscription interface {
	Unsubscribe()
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// HistoryRepo persists resolved session outcomes.
type HistoryRepo interface {
	Create(ctx context.Context, record *models.TrackingRecord) error
}

// StatusCache caches the final status of a payment for late readers.
type StatusCache interface {
	Set(ctx context.Context, key string, value interface{}) error
}

const (
	DefaultFallbackTimeout      = 60 * time.Second
	DefaultFallbackQueryTimeout = 15 * time.Second
)

// Options carries the tracker's timing policy.
type Options struct {
	// FallbackTimeout is the delay before the one-shot M-Pesa status query.
	FallbackTimeout time.Duration
	// FallbackQueryTimeout bounds the fallback HTTP round-trip.
	FallbackQueryTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.FallbackTimeout <= 0 {
		o.FallbackTimeout = DefaultFallbackTimeout
	}
	if o.FallbackQueryTimeout <= 0 {
		o.FallbackQueryTimeout = DefaultFallbackQueryTimeout
	}
	return o
}

// Tracker owns the registry of live tracking sessions. Each Start creates an
// independent session with its own channel subscription and fallback timer;
// Publisher, History and Cache are optional resolution sinks.
type Tracker struct {
	Query     QueryClient
	Channel   RealtimeChannel
	Publisher Publisher
	History   HistoryRepo
	Cache     StatusCache

	opts Options

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewTracker(query QueryClient, channel RealtimeChannel, publisher Publisher, history HistoryRepo, cache StatusCache, opts Options) *Tracker {
	return &Tracker{
		Query:     query,
		Channel:   channel,
		Publisher: publisher,
		History:   history,
		Cache:     cache,
		opts:      opts.withDefaults(),
		sessions:  make(map[string]*Session),
	}
}

// Start begins tracking one payment and returns immediately; resolution is
// asynchronous. It subscribes to the realtime channel for mpesa and paystack
// payments and arms the fallback timer for mpesa payments that carry a
// checkout ID.
func (t *Tracker) Start(paymentID string, method models.PaymentMethod, checkoutID string) (*Session, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, fmt.Errorf("payment ID is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}

	s := &Session{
		ID:         uuid.New().String(),
		PaymentID:  paymentID,
		Method:     method,
		CheckoutID: checkoutID,

		status:    models.StatusPending,
		query:     t.Query,
		publisher: t.Publisher,
		history:   t.History,
		cache:     t.Cache,
		opts:      t.opts,
	}
	s.log = logrus.WithFields(logrus.Fields{
		"session_id": s.ID,
		"payment_id": paymentID,
		"method":     method,
	})

	t.mu.Lock()
	t.sessions[s.ID] = s
	t.mu.Unlock()

	if method == models.MethodMpesa || method == models.MethodPaystack {
		sub, err := t.Channel.Subscribe(paymentID, s.handleEvent)
		if err != nil {
			// Diagnostic only: the fallback poll and seed fetch remain live
			// sources, so a dead channel must not fail the session.
			s.log.Errorf("realtime subscribe failed: %s", err.Error())
			s.setTransportError("Realtime connection unavailable")
		} else {
			s.attachSubscription(sub)
		}
	} else {
		s.log.Info("skipping realtime subscription for method")
	}

	if method == models.MethodMpesa && checkoutID != "" {
		s.armFallback()
	}

	go s.refreshFromServer()

	return s, nil
}

// Get returns a live session by id.
func (t *Tracker) Get(sessionID string) (*Session, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.sessions[sessionID]
	return s, ok
}

// Stop tears down a session and removes it from the registry. Stopping an
// unknown or already-stopped session is a no-op; the bool reports whether the
// session existed.
func (t *Tracker) Stop(sessionID string) bool {
	t.mu.Lock()
	s, ok := t.sessions[sessionID]
	if ok {
		delete(t.sessions, sessionID)
	}
	t.mu.Unlock()

	if !ok {
		return false
	}

	s.stop()
	return true
}

// StopAll tears down every live session. Called on shutdown.
func (t *Tracker) StopAll() {
	t.mu.Lock()
	sessions := make([]*Session, 0, len(t.sessions))
	for id, s := range t.sessions {
		sessions = append(sessions, s)
		delete(t.sessions, id)
	}
	t.mu.Unlock()

	for _, s := range sessions {
		s.stop()
	}
}
