// Package log provides structured protocol logging for appliance sessions.
//
// This package defines the Logger interface and Event types for capturing
// protocol-level events: MQTT payloads in both directions, session state
// transitions, and errors. It is separate from operational logging (slog) -
// protocol capture provides a complete machine-readable trace of what a
// device said and when, for debugging and analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	opts.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	opts.ProtocolLogger, _ = log.NewFileLogger("/var/log/purelink/device.plog")
//
//	// Both: use MultiLogger
//	opts.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Three event payloads cover the session lifecycle:
//   - Message: an MQTT payload, classified when inbound (MessageEvent)
//   - StateChange: a session state transition (StateChangeEvent)
//   - Error: a failure at any layer (ErrorEventData)
//
// # File Format
//
// Log files use CBOR encoding with .plog extension. The purelink-log CLI
// tool provides viewing, filtering, and export capabilities.
package log
