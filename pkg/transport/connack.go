package transport

import (
	"errors"

	"github.com/eclipse/paho.mqtt.golang/packets"
)

// CONNACK return codes sent by appliance brokers.
const (
	CodeAccepted            byte = 0
	CodeBadProtocolVersion  byte = 1
	CodeIdentifierRejected  byte = 2
	CodeServerUnavailable   byte = 3
	CodeBadUsernamePassword byte = 4
	CodeNotAuthorised       byte = 5
)

// ConnectionRefusedError reports the CONNACK return code an appliance
// broker answered a connect attempt with. Code 4 is what a stale or
// wrongly decrypted credential produces.
type ConnectionRefusedError struct {
	Code byte
}

func (e *ConnectionRefusedError) Error() string {
	return ConnackReason(e.Code)
}

// ConnackReason returns the human-readable reason for a CONNACK return
// code.
func ConnackReason(code byte) string {
	switch code {
	case CodeAccepted:
		return "Connection successful"
	case CodeBadProtocolVersion:
		return "Connection refused - incorrect protocol version"
	case CodeIdentifierRejected:
		return "Connection refused - invalid client identifier"
	case CodeServerUnavailable:
		return "Connection refused - server unavailable"
	case CodeBadUsernamePassword:
		return "Connection refused - bad username or password"
	case CodeNotAuthorised:
		return "Connection refused - not authorised"
	}
	return "Connection refused - unknown reason"
}

// refusedError maps a connect error from the MQTT library back to the
// CONNACK return code it stands for. Network failures and timeouts have
// no code and are passed through unchanged.
func refusedError(err error) error {
	for code, connErr := range packets.ConnErrors {
		if connErr == nil || code == 0 || code > CodeNotAuthorised {
			continue
		}
		if errors.Is(err, connErr) {
			return &ConnectionRefusedError{Code: code}
		}
	}
	return err
}
