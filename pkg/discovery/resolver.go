package discovery

import (
	"context"
	"time"
)

// Resolver finds the network endpoint a device serial can be reached at.
type Resolver interface {
	// Resolve browses the local network for the device with the given
	// serial. It returns ErrDeviceNotFound when all attempts are exhausted
	// and the context error when the context ends first.
	Resolve(ctx context.Context, serial string) (*Endpoint, error)
}

// Config configures resolver behavior.
type Config struct {
	// AttemptTimeout is how long a single browse attempt waits for the
	// device to answer. Default: 5 seconds.
	AttemptTimeout time.Duration

	// Attempts is how many browse attempts Resolve makes before giving up.
	// Default: 15.
	Attempts int

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		AttemptTimeout: 5 * time.Second,
		Attempts:       15,
	}
}
