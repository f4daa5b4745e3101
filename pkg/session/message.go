package session

import (
	"github.com/purelink-protocol/purelink-go/pkg/device"
	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

// Message is one decoded inbound message as delivered to listeners.
type Message struct {
	// Kind identifies the payload in Body.
	Kind wire.MessageKind

	// Topic the message arrived on.
	Topic string

	// Body is the decoded payload. For KindOperatingState it is a
	// *wire.OperatingState, *wire.HeatingOperatingState or
	// *wire.CleaningState depending on the device; KindSensorState
	// carries a *wire.SensorState; the vacuum map, telemetry and goodbye
	// kinds carry the matching wire type.
	Body any
}

// Listener receives every decoded inbound message. Listeners run
// synchronously on the transport's network goroutine in registration
// order and must not block.
type Listener func(Message)

type listenerEntry struct {
	id int
	fn Listener
}

// decodeMessage decodes a classified payload into the state variant this
// device publishes for the kind.
func (s *Session) decodeMessage(kind wire.MessageKind, payload []byte) (any, error) {
	switch kind {
	case wire.KindOperatingState:
		switch s.capability.Kind {
		case device.KindVacuum:
			return wire.DecodeCleaningState(payload)
		case device.KindHeatingFan:
			return wire.DecodeHeatingOperatingState(payload)
		default:
			return wire.DecodeOperatingState(payload)
		}
	case wire.KindSensorState:
		return wire.DecodeSensorState(payload)
	case wire.KindMapGlobal:
		return wire.DecodeMapGlobal(payload)
	case wire.KindMapGrid:
		return wire.DecodeMapGrid(payload)
	case wire.KindMapData:
		return wire.DecodeMapData(payload)
	case wire.KindTelemetryData:
		return wire.DecodeTelemetryData(payload)
	default:
		return wire.DecodeGoodbye(payload)
	}
}

// warnUnknownTokens flags enumerated values newer firmware publishes that
// this library does not know yet. The raw string stays in the decoded
// state either way; the warning is the only signal.
func (s *Session) warnUnknownTokens(body any) {
	cleaning, ok := body.(*wire.CleaningState)
	if !ok {
		return
	}
	if cleaning.Mode != "" && !cleaning.Mode.Known() {
		s.warnLog("unknown cleaning mode token",
			"serial", s.info.Serial,
			"value", string(cleaning.Mode))
	}
	if cleaning.PowerMode != "" && !cleaning.PowerMode.Known() {
		s.warnLog("unknown power mode token",
			"serial", s.info.Serial,
			"value", string(cleaning.PowerMode))
	}
}

// storeMessage updates the session's state fields and marks the first
// arrival of each gated kind. Runs strictly before listener dispatch.
func (s *Session) storeMessage(kind wire.MessageKind, body any) {
	s.mu.Lock()
	switch b := body.(type) {
	case *wire.OperatingState:
		s.currentState = b
	case *wire.HeatingOperatingState:
		s.heatingState = b
		s.currentState = &b.OperatingState
	case *wire.CleaningState:
		s.cleaningState = b
	case *wire.SensorState:
		s.environment = b
	}
	s.mu.Unlock()

	switch kind {
	case wire.KindOperatingState:
		s.stateOnce.Do(func() { close(s.firstState) })
	case wire.KindSensorState:
		s.sensorOnce.Do(func() { close(s.firstSensor) })
	}
}

// dispatch delivers a message to a snapshot of the listener list, so
// listeners may add or remove listeners while a delivery is in flight.
func (s *Session) dispatch(msg Message) {
	s.mu.RLock()
	entries := make([]listenerEntry, len(s.listeners))
	copy(entries, s.listeners)
	s.mu.RUnlock()

	for _, entry := range entries {
		entry.fn(msg)
	}
}

// AddListener registers fn for every decoded inbound message. The
// returned id can be passed to RemoveListener.
func (s *Session) AddListener(fn Listener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextListener++
	s.listeners = append(s.listeners, listenerEntry{id: s.nextListener, fn: fn})
	return s.nextListener
}

// RemoveListener unregisters a listener. Safe to call from within a
// listener callback; the current delivery still completes.
func (s *Session) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, entry := range s.listeners {
		if entry.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// ClearListeners unregisters every listener. A delivery already in flight
// still completes against its snapshot.
func (s *Session) ClearListeners() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = nil
}
