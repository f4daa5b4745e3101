package log

import (
	"time"

	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

// Event represents a protocol log event captured during a device session.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Serial is the device serial.
	Serial string `cbor:"6,keyasint,omitempty"`

	// ProductType is the device model identifier.
	ProductType string `cbor:"7,keyasint,omitempty"`

	// RemoteAddr is the broker address (IP:port).
	RemoteAddr string `cbor:"8,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Message     *MessageEvent     `cbor:"10,keyasint,omitempty"` // MQTT payload
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"` // Session state
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates a message received from the device.
	DirectionIn Direction = 0
	// DirectionOut indicates a message published to the device.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which layer captured the event.
type Layer uint8

const (
	// LayerTransport is the MQTT connection layer.
	LayerTransport Layer = 0
	// LayerWire is the payload encoding layer.
	LayerWire Layer = 1
	// LayerSession is the session layer.
	LayerSession Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates an MQTT payload in either direction.
	CategoryMessage Category = 0
	// CategoryState indicates a session state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MaxLoggedPayload caps how many payload bytes are stored per event.
// Vacuum map grids can run to tens of kilobytes; everything else fits.
const MaxLoggedPayload = 4096

// MessageEvent captures an MQTT payload.
type MessageEvent struct {
	// Topic the payload travelled on.
	Topic string `cbor:"1,keyasint"`

	// Kind is the classified message kind (inbound only).
	Kind wire.MessageKind `cbor:"2,keyasint,omitempty"`

	// Msg is the raw msg discriminator token (e.g. "STATE-SET").
	Msg string `cbor:"3,keyasint,omitempty"`

	// QoS the message was published with (outbound only).
	QoS byte `cbor:"4,keyasint,omitempty"`

	// Size is the full payload size in bytes.
	Size int `cbor:"5,keyasint"`

	// Payload is the raw JSON (may be truncated for large payloads).
	Payload []byte `cbor:"6,keyasint,omitempty"`

	// Truncated indicates if Payload was truncated.
	Truncated bool `cbor:"7,keyasint,omitempty"`
}

// NewMessageEvent builds a MessageEvent for a payload, copying and
// truncating it at MaxLoggedPayload.
func NewMessageEvent(topic string, payload []byte) *MessageEvent {
	event := &MessageEvent{
		Topic: topic,
		Size:  len(payload),
	}
	if len(payload) > MaxLoggedPayload {
		event.Payload = append([]byte(nil), payload[:MaxLoggedPayload]...)
		event.Truncated = true
	} else {
		event.Payload = append([]byte(nil), payload...)
	}
	return event
}

// StateChangeEvent captures a session state transition.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the CONNACK return code for refused connections.
	Code *int `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
