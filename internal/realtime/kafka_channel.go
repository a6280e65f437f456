// Package realtime delivers payment events from the backend's Kafka bus to
// per-payment subscribers, presenting them as the named events a tracking
// session consumes.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
	"github.com/SIRETECH254/sire-payment-tracker/internal/tracker"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// KafkaChannel consumes the payment event topics and routes each message to
// the subscribers registered for its payment id. Connectivity is tracked
// channel-wide: a read error broadcasts disconnect, the next successful read
// broadcasts connect. Reconnection itself is kafka-go's concern.
type KafkaChannel struct {
	readers []*kafka.Reader

	mu        sync.RWMutex
	subs      map[string]map[*subscription]struct{}
	connected bool
}

type subscription struct {
	channel   *KafkaChannel
	paymentID string
	handler   func(models.ChannelEvent)
	once      sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.channel.remove(s)
	})
}

func NewKafkaChannel(brokers []string, topics []string, groupID string) *KafkaChannel {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaChannel{
		readers: readers,
		subs:    make(map[string]map[*subscription]struct{}),
	}
}

// Listen starts one consume loop per topic. It returns immediately; loops
// exit when ctx is cancelled.
func (c *KafkaChannel) Listen(ctx context.Context) {
	// Readers are assumed healthy until the first read error so early
	// subscribers see an accurate connected state.
	c.setConnected(true)

	for _, reader := range c.readers {
		go c.consume(ctx, reader)
	}
}

// Close releases the underlying readers.
func (c *KafkaChannel) Close() {
	for _, reader := range c.readers {
		if err := reader.Close(); err != nil {
			logrus.Errorf("error closing kafka reader %s", err.Error())
		}
	}
}

// Subscribe registers a handler for one payment id. The current connectivity
// is delivered immediately as a synthetic connect event so the subscriber
// never waits for traffic to learn the channel is up.
func (c *KafkaChannel) Subscribe(paymentID string, handler func(models.ChannelEvent)) (tracker.Subscription, error) {
	sub := &subscription{
		channel:   c,
		paymentID: paymentID,
		handler:   handler,
	}

	c.mu.Lock()
	if c.subs[paymentID] == nil {
		c.subs[paymentID] = make(map[*subscription]struct{})
	}
	c.subs[paymentID][sub] = struct{}{}
	connected := c.connected
	c.mu.Unlock()

	if connected {
		handler(models.ChannelEvent{Name: models.EventConnect})
	}

	return sub, nil
}

func (c *KafkaChannel) remove(sub *subscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok := c.subs[sub.paymentID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(c.subs, sub.paymentID)
		}
	}
}

func (c *KafkaChannel) consume(ctx context.Context, reader *kafka.Reader) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.Errorf("kafka read error %s", err.Error())
			c.setConnected(false)
			continue
		}

		c.setConnected(true)
		c.dispatch(msg)
	}
}

// dispatch routes one message to the subscribers for its payment id. The
// message key carries the payment id; payloads lacking a key are routed by
// their paymentId field. Messages matching no subscriber are dropped.
func (c *KafkaChannel) dispatch(msg kafka.Message) {
	name, ok := eventNameForTopic(msg.Topic)
	if !ok {
		logrus.Errorf("topic not allowed %s", msg.Topic)
		return
	}

	paymentID := string(msg.Key)
	if paymentID == "" {
		var routed struct {
			PaymentID string `json:"paymentId"`
		}
		if err := json.Unmarshal(msg.Value, &routed); err == nil {
			paymentID = routed.PaymentID
		}
	}
	if paymentID == "" {
		logrus.Warnf("dropping unroutable message on topic %s", msg.Topic)
		return
	}

	event := models.ChannelEvent{Name: name, Payload: msg.Value}
	for _, handler := range c.handlersFor(paymentID) {
		handler(event)
	}
}

func (c *KafkaChannel) handlersFor(paymentID string) []func(models.ChannelEvent) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	handlers := make([]func(models.ChannelEvent), 0, len(c.subs[paymentID]))
	for sub := range c.subs[paymentID] {
		handlers = append(handlers, sub.handler)
	}
	return handlers
}

func (c *KafkaChannel) setConnected(up bool) {
	c.mu.Lock()
	if c.connected == up {
		c.mu.Unlock()
		return
	}
	c.connected = up

	handlers := make([]func(models.ChannelEvent), 0)
	for _, set := range c.subs {
		for sub := range set {
			handlers = append(handlers, sub.handler)
		}
	}
	c.mu.Unlock()

	name := models.EventDisconnect
	if up {
		name = models.EventConnect
	}
	event := models.ChannelEvent{Name: name}
	for _, handler := range handlers {
		handler(event)
	}
}

func eventNameForTopic(topic string) (models.ChannelEventName, bool) {
	switch topic {
	case models.CallbackTopic2Subscribe:
		return models.EventCallbackReceived, true
	case models.UpdatedTopic2Subscribe:
		return models.EventPaymentUpdated, true
	default:
		return "", false
	}
}
