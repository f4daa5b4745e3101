// Package transport provides the MQTT connection to an appliance's
// on-device broker.
//
// The transport layer handles:
//   - Plain TCP connections to the broker port (default 1883)
//   - Username/password authentication (serial + decrypted credential)
//   - Protocol level selection per model family
//   - CONNACK return code mapping
//
// # Protocol Stack
//
//	┌────────────────────────────────┐
//	│      JSON Messages             │
//	├────────────────────────────────┤
//	│   MQTT 3.1 / 3.1.1             │
//	├────────────────────────────────┤
//	│           TCP                  │
//	└────────────────────────────────┘
//
// Cooling fans speak MQTT 3.1.1. The robot vacuum firmware only accepts
// MQTT 3.1, so the protocol level is part of Config.
//
// There is no automatic reconnect: a lost connection is reported through
// Config.OnConnectionLost and the owning session decides what to do.
package transport
