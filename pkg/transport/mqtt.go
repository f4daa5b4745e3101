package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Transport errors.
var (
	ErrNotConnected   = errors.New("not connected to the broker")
	ErrConnectTimeout = errors.New("timed out waiting for the broker to answer")
)

// DefaultConnectTimeout bounds Connect when Config.ConnectTimeout is unset.
const DefaultConnectTimeout = 10 * time.Second

const (
	publishTimeout      = 5 * time.Second
	subscribeTimeout    = 5 * time.Second
	keepAliveInterval   = 30 * time.Second
	disconnectQuiesceMs = 250
)

// Config configures a broker connection.
type Config struct {
	// Addr is the broker address as host:port.
	Addr string

	// Username is the device serial.
	Username string

	// Password is the decrypted local credential.
	Password string

	// ClientID identifies this client to the broker. A random one is
	// generated when empty.
	ClientID string

	// MQTTVersion is the protocol level: 3 for MQTT 3.1, 4 for MQTT 3.1.1.
	// Defaults to 4.
	MQTTVersion uint

	// ConnectTimeout bounds how long Connect waits for the broker.
	// Default: 10 seconds.
	ConnectTimeout time.Duration

	// OnConnectionLost is invoked when an established connection drops.
	OnConnectionLost func(err error)
}

// MQTTClient implements the Client interface using Eclipse Paho.
type MQTTClient struct {
	config Config

	mu     sync.Mutex
	client pahomqtt.Client
}

// NewMQTTClient creates a client for one appliance broker.
func NewMQTTClient(config Config) *MQTTClient {
	if config.ClientID == "" {
		// MQTT 3.1 brokers cap client identifiers at 23 bytes.
		config.ClientID = "purelink-" + uuid.NewString()[:8]
	}
	if config.MQTTVersion == 0 {
		config.MQTTVersion = 4
	}
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}
	return &MQTTClient{config: config}
}

// Connect dials the broker and waits for its CONNACK. A rejection comes
// back as a *ConnectionRefusedError; network failures and timeouts are
// returned as-is.
func (c *MQTTClient) Connect(ctx context.Context) error {
	opts := pahomqtt.NewClientOptions().
		AddBroker("tcp://" + c.config.Addr).
		SetClientID(c.config.ClientID).
		SetUsername(c.config.Username).
		SetPassword(c.config.Password).
		SetProtocolVersion(c.config.MQTTVersion).
		SetCleanSession(true).
		SetAutoReconnect(false).
		SetKeepAlive(keepAliveInterval).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			if c.config.OnConnectionLost != nil {
				c.config.OnConnectionLost(err)
			}
		})

	client := pahomqtt.NewClient(opts)

	token := client.Connect()
	done := make(chan struct{})
	go func() {
		token.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(c.config.ConnectTimeout):
		client.Disconnect(disconnectQuiesceMs)
		return ErrConnectTimeout
	case <-ctx.Done():
		client.Disconnect(disconnectQuiesceMs)
		return ctx.Err()
	}

	if err := token.Error(); err != nil {
		return refusedError(err)
	}

	c.mu.Lock()
	c.client = client
	c.mu.Unlock()
	return nil
}

// Subscribe registers a handler for a topic.
func (c *MQTTClient) Subscribe(topic string, qos byte, handler MessageHandler) error {
	client := c.pahoClient()
	if client == nil {
		return ErrNotConnected
	}

	token := client.Subscribe(topic, qos, func(_ pahomqtt.Client, msg pahomqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	if !token.WaitTimeout(subscribeTimeout) {
		return fmt.Errorf("subscribe to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return nil
}

// Publish sends a payload to a topic.
func (c *MQTTClient) Publish(topic string, qos byte, payload []byte) error {
	client := c.pahoClient()
	if client == nil {
		return ErrNotConnected
	}

	token := client.Publish(topic, qos, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// IsConnected reports whether the connection is currently up.
func (c *MQTTClient) IsConnected() bool {
	client := c.pahoClient()
	return client != nil && client.IsConnected()
}

// Disconnect closes the connection. Safe to call when not connected.
func (c *MQTTClient) Disconnect() {
	c.mu.Lock()
	client := c.client
	c.client = nil
	c.mu.Unlock()

	if client != nil && client.IsConnected() {
		client.Disconnect(disconnectQuiesceMs)
	}
}

func (c *MQTTClient) pahoClient() pahomqtt.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client
}
