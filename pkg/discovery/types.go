package discovery

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

// Service type constants for mDNS.
const (
	// ServiceType is the service appliances announce their MQTT broker on.
	ServiceType = "_dyson_mqtt._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the port appliance brokers listen on.
	DefaultPort = 1883
)

// Discovery errors.
var (
	ErrDeviceNotFound = errors.New("device not found on the local network")
)

// Endpoint is where an appliance's MQTT broker can be reached.
type Endpoint struct {
	// Serial is the device serial extracted from the instance name.
	Serial string

	// InstanceName is the full mDNS instance name (e.g. "475_NN2-EU-ABC1234A").
	InstanceName string

	// Host is the advertised hostname.
	Host string

	// Port is the broker port.
	Port uint16

	// Addresses contains resolved IP addresses.
	Addresses []string
}

// Address returns the preferred dial address: the first resolved IP, or the
// hostname when resolution produced no addresses.
func (e *Endpoint) Address() string {
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return strings.TrimSuffix(e.Host, ".")
}

// Addr returns the dial address joined with the port.
func (e *Endpoint) Addr() string {
	return net.JoinHostPort(e.Address(), strconv.Itoa(int(e.Port)))
}

// SerialFromInstance extracts the device serial from an mDNS instance name
// of the form "<productType>_<serial>". It returns an empty string when the
// name does not follow that form.
func SerialFromInstance(instance string) string {
	name := instance
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	_, serial, ok := strings.Cut(name, "_")
	if !ok {
		return ""
	}
	return serial
}
