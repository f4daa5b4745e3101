// Package commands implements the purelink-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/purelink-protocol/purelink-go/pkg/log"
	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

// DumpFilter specifies criteria for filtering events in the dump command.
type DumpFilter struct {
	SessionID string
	Serial    string
	Direction *log.Direction
	Kind      *wire.MessageKind
}

// RunDump executes the dump command.
func RunDump(path string, filter DumpFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		SessionID: filter.SessionID,
		Serial:    filter.Serial,
		Direction: filter.Direction,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		// The kind filter selects message events only.
		if filter.Kind != nil {
			if event.Message == nil || event.Message.Kind != *filter.Kind {
				continue
			}
		}

		formatEvent(output, event)
	}

	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sess:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sessID := shortenSessionID(event.SessionID)
	dir := event.Direction.String()

	var typeLabel string
	switch {
	case event.Message != nil:
		typeLabel = messageLabel(event.Message)
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [sess:%s] %-3s %s %s\n", ts, sessID, dir, event.Layer.String(), typeLabel)

	if event.Serial != "" {
		fmt.Fprintf(w, "  Device: %s (%s)\n", event.Serial, event.ProductType)
	}

	switch {
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// messageLabel prefers the raw msg discriminator (set on outbound events)
// over the classified kind (set on inbound events).
func messageLabel(msg *log.MessageEvent) string {
	if msg.Msg != "" {
		return msg.Msg
	}
	return msg.Kind.String()
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatMessageDetails writes message-specific details.
func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	fmt.Fprintf(w, "  Topic: %s\n", msg.Topic)
	if msg.QoS > 0 {
		fmt.Fprintf(w, "  QoS: %d\n", msg.QoS)
	}
	fmt.Fprintf(w, "  Size: %d bytes\n", msg.Size)
	if len(msg.Payload) > 0 {
		fmt.Fprintf(w, "  Payload: %s", msg.Payload)
		if msg.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

// formatStateChangeDetails writes state change details.
func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != nil {
		fmt.Fprintf(w, "  Code: %d\n", *err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseDirectionFlag parses a direction string from a command-line flag
// (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseKindFlag parses a message kind string from a command-line flag
// (case-insensitive).
func ParseKindFlag(s string) (wire.MessageKind, error) {
	switch strings.ToLower(s) {
	case "state":
		return wire.KindOperatingState, nil
	case "sensor":
		return wire.KindSensorState, nil
	case "map-global":
		return wire.KindMapGlobal, nil
	case "map-grid":
		return wire.KindMapGrid, nil
	case "map-data":
		return wire.KindMapData, nil
	case "telemetry":
		return wire.KindTelemetryData, nil
	case "goodbye":
		return wire.KindGoodbye, nil
	case "unknown":
		return wire.KindUnknown, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be state, sensor, map-global, map-grid, map-data, telemetry, goodbye, or unknown)", s)
	}
}
