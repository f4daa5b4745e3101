// Package wire defines the JSON payload types exchanged with appliances
// over their local MQTT broker.
//
// Every payload is a JSON object with a msg discriminator string and a
// time field (ISO-8601 UTC with a trailing Z).
//
// # Inbound messages
//
// Fans publish two kinds on their status topic:
//   - CURRENT-STATE / STATE-CHANGE: operating state under product-state
//   - ENVIRONMENTAL-CURRENT-SENSOR-DATA: sensor readings under data
//
// Robot vacuums publish CURRENT-STATE / STATE-CHANGE with a flat cleaning
// state, plus MAP-GLOBAL, MAP-GRID, MAP-DATA, TELEMETRY-DATA and GOODBYE.
//
// # Previous/current pairs
//
// Inside product-state a field value is either a bare string or a
// two-element [previous, current] array. Decoders always take the current
// (second) element when a pair is present.
//
// # Unknown values
//
// Enumerated fields are typed strings. A firmware value this package does
// not know about decodes to the raw string rather than failing; callers
// compare against the exported constants and treat anything else as an
// unrecognized but valid value.
package wire
