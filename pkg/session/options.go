package session

import (
	"log/slog"
	"time"

	"github.com/purelink-protocol/purelink-go/pkg/discovery"
	"github.com/purelink-protocol/purelink-go/pkg/log"
	"github.com/purelink-protocol/purelink-go/pkg/transport"
)

// Default timing values applied when the corresponding Options field is
// unset.
const (
	DefaultConnectTimeout   = 10 * time.Second
	DefaultFirstDataTimeout = 30 * time.Second
	DefaultPollInterval     = 30 * time.Second
)

// TransportFactory builds the broker client for a resolved endpoint.
type TransportFactory func(config transport.Config) transport.Client

// Options configures a session. The zero value is usable: the device is
// resolved via mDNS and connected with the default timeouts.
type Options struct {
	// Endpoint pins the broker address as host:port and skips discovery.
	Endpoint string

	// Resolver locates the device when no endpoint is pinned. Defaults
	// to an mDNS resolver with discovery.DefaultConfig.
	Resolver discovery.Resolver

	// ConnectTimeout bounds the broker handshake.
	ConnectTimeout time.Duration

	// FirstDataTimeout bounds how long Connect waits for the device's
	// first state messages after the handshake.
	FirstDataTimeout time.Duration

	// PollInterval is the delay between environmental sensor requests on
	// devices that support them.
	PollInterval time.Duration

	// ProtocolLogger receives a protocol event for every message, state
	// transition and error. Defaults to log.NoopLogger.
	ProtocolLogger log.Logger

	// Logger receives operational log records. Nil disables them.
	Logger *slog.Logger

	// Transport overrides how the broker client is built. Tests use this
	// to script broker behavior. Defaults to transport.NewMQTTClient.
	Transport TransportFactory
}

// withDefaults fills unset fields with their defaults.
func (o Options) withDefaults() Options {
	if o.ConnectTimeout <= 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	if o.FirstDataTimeout <= 0 {
		o.FirstDataTimeout = DefaultFirstDataTimeout
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.ProtocolLogger == nil {
		o.ProtocolLogger = log.NoopLogger{}
	}
	if o.Transport == nil {
		o.Transport = func(config transport.Config) transport.Client {
			return transport.NewMQTTClient(config)
		}
	}
	return o
}
