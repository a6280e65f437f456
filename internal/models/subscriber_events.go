package models

import "encoding/json"

const (
	CallbackTopic2Subscribe string = "payments.callback.received"
	UpdatedTopic2Subscribe  string = "payments.updated"
)

// ChannelEventName identifies an event delivered on the realtime channel.
type ChannelEventName string

const (
	EventConnect          ChannelEventName = "connect"
	EventDisconnect       ChannelEventName = "disconnect"
	EventCallbackReceived ChannelEventName = "callback.received"
	EventPaymentUpdated   ChannelEventName = "payment.updated"
)

// ChannelEvent is one named event delivered to a tracking session. Payload is
// left raw; the tracker decodes it per event name and absorbs malformed data.
type ChannelEvent struct {
	Name    ChannelEventName
	Payload json.RawMessage
}

// CallbackReceivedEvent is the gateway callback payload. The result code
// arrives under CODE or code, as a string or a number; decoding is deferred
// to the normalization boundary.
type CallbackReceivedEvent struct {
	PaymentID string          `json:"paymentId"`
	Code      json.RawMessage `json:"code"`
	CODE      json.RawMessage `json:"CODE"`
	Message   string          `json:"message"`
}

// PaymentUpdatedEvent is the database change payload.
type PaymentUpdatedEvent struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
