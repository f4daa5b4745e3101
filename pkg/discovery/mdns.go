package discovery

import (
	"context"
	"errors"
	"net"

	"github.com/enbility/zeroconf/v3"
)

// MDNSResolver implements the Resolver interface using zeroconf.
type MDNSResolver struct {
	config Config
}

// NewMDNSResolver creates a new mDNS resolver.
func NewMDNSResolver(config Config) (*MDNSResolver, error) {
	defaults := DefaultConfig()
	if config.AttemptTimeout <= 0 {
		config.AttemptTimeout = defaults.AttemptTimeout
	}
	if config.Attempts <= 0 {
		config.Attempts = defaults.Attempts
	}
	return &MDNSResolver{config: config}, nil
}

// Resolve browses for the device with the given serial. Each attempt runs a
// fresh browse so an appliance that missed the previous multicast query gets
// asked again.
func (r *MDNSResolver) Resolve(ctx context.Context, serial string) (*Endpoint, error) {
	for attempt := 0; attempt < r.config.Attempts; attempt++ {
		endpoint, err := r.browseOnce(ctx, serial)
		if err == nil {
			return endpoint, nil
		}
		if !errors.Is(err, ErrDeviceNotFound) {
			return nil, err
		}
	}
	return nil, ErrDeviceNotFound
}

// browseOnce runs one browse bounded by the attempt timeout and returns the
// first entry whose serial matches.
func (r *MDNSResolver) browseOnce(parent context.Context, serial string) (*Endpoint, error) {
	ctx, cancel := context.WithTimeout(parent, r.config.AttemptTimeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)
	found := make(chan *Endpoint, 1)

	go func() {
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				endpoint := entryToEndpoint(entry)
				if endpoint == nil || endpoint.Serial != serial {
					continue
				}
				select {
				case found <- endpoint:
				default:
				}
				cancel()

			case _, ok := <-removed:
				if !ok {
					removed = nil
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Start browsing in background
	go func() {
		_ = zeroconf.Browse(ctx, ServiceType, Domain, entries, removed, r.browserOptions()...)
	}()

	<-ctx.Done()

	select {
	case endpoint := <-found:
		return endpoint, nil
	default:
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return nil, ErrDeviceNotFound
}

// Browse streams every appliance found on the local network until the
// context ends. Addresses from multiple interfaces are aggregated into the
// already-emitted entry, keyed by instance name.
func (r *MDNSResolver) Browse(ctx context.Context) (<-chan *Endpoint, error) {
	out := make(chan *Endpoint)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	go func() {
		defer close(out)

		// Track endpoints by instance name, aggregating addresses
		endpoints := make(map[string]*Endpoint)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				endpoint := entryToEndpoint(entry)
				if endpoint == nil {
					continue
				}

				existing, found := endpoints[endpoint.InstanceName]
				if found {
					// Merge addresses into existing entry
					existing.Addresses = mergeAddresses(existing.Addresses, endpoint.Addresses)
				} else {
					// New endpoint - store and emit
					endpoints[endpoint.InstanceName] = endpoint
					select {
					case out <- endpoint:
					case <-ctx.Done():
						return
					}
				}

			case entry, ok := <-removed:
				if !ok {
					removed = nil
					continue
				}
				// Remove addresses that came from this interface
				if existing, found := endpoints[entry.Instance]; found {
					existing.Addresses = removeAddresses(existing.Addresses, entry)
					// If no addresses remain, remove the endpoint
					if len(existing.Addresses) == 0 {
						delete(endpoints, entry.Instance)
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	// Start browsing in background
	go func() {
		_ = zeroconf.Browse(ctx, ServiceType, Domain, entries, removed, r.browserOptions()...)
	}()

	return out, nil
}

// browserOptions returns zeroconf client options based on config.
func (r *MDNSResolver) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption

	// Select specific interface if configured
	if r.config.Interface != "" {
		iface, err := net.InterfaceByName(r.config.Interface)
		if err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}

	return opts
}

// entryToEndpoint converts a zeroconf entry to an Endpoint. Entries whose
// instance name does not carry a serial are skipped.
func entryToEndpoint(entry *zeroconf.ServiceEntry) *Endpoint {
	serial := SerialFromInstance(entry.Instance)
	if serial == "" {
		return nil
	}

	// Collect addresses
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}

	port := uint16(entry.Port)
	if port == 0 {
		port = DefaultPort
	}

	return &Endpoint{
		Serial:       serial,
		InstanceName: entry.Instance,
		Host:         entry.HostName,
		Port:         port,
		Addresses:    addrs,
	}
}

// mergeAddresses adds new addresses to existing list, avoiding duplicates.
func mergeAddresses(existing, new []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}

	for _, addr := range new {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses removes addresses from a zeroconf entry from the list.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	toRemove := make(map[string]bool)
	for _, ip := range entry.AddrIPv4 {
		toRemove[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		toRemove[ip.String()] = true
	}

	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}

// Ensure MDNSResolver implements Resolver interface.
var _ Resolver = (*MDNSResolver)(nil)
