package transport

import "context"

// MessageHandler is invoked for every message received on a subscribed
// topic. Handlers run on the transport's network goroutine and must not
// block.
type MessageHandler func(topic string, payload []byte)

// Client represents a connection to an appliance broker.
// Implemented by MQTTClient.
type Client interface {
	// Connect dials the broker and blocks until the broker accepts or
	// rejects the connection, the configured timeout passes, or ctx ends.
	// A rejection is returned as a *ConnectionRefusedError.
	Connect(ctx context.Context) error

	// Subscribe registers a handler for a topic.
	Subscribe(topic string, qos byte, handler MessageHandler) error

	// Publish sends a payload to a topic.
	Publish(topic string, qos byte, payload []byte) error

	// IsConnected reports whether the connection is currently up.
	IsConnected() bool

	// Disconnect closes the connection. Safe to call when not connected.
	Disconnect()
}

// Compile-time interface satisfaction checks.
var _ Client = (*MQTTClient)(nil)
