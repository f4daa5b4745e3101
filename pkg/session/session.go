package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/purelink-protocol/purelink-go/pkg/device"
	"github.com/purelink-protocol/purelink-go/pkg/discovery"
	"github.com/purelink-protocol/purelink-go/pkg/log"
	"github.com/purelink-protocol/purelink-go/pkg/transport"
	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

// Session errors.
var (
	// ErrAlreadyConnected is returned by Connect while a connect attempt
	// is in flight or the session is available.
	ErrAlreadyConnected = errors.New("session already connected")

	// ErrSessionClosed is returned by Connect on a spent session.
	ErrSessionClosed = errors.New("session closed, construct a new session to reconnect")

	// ErrNotConnected is returned by commands issued while the session is
	// not connected. The command is dropped without side effects.
	ErrNotConnected = errors.New("session not connected")

	// ErrFirstDataTimeout is returned by Connect when the device accepted
	// the connection but never published its first state.
	ErrFirstDataTimeout = errors.New("timed out waiting for the device's first state")

	// ErrCommandNotSupported is returned for commands outside the
	// device's command vocabulary, such as cleaning commands on a fan.
	ErrCommandNotSupported = errors.New("command not supported by this device")
)

// Session is a single-use connection to one appliance. Construct with New,
// establish with Connect, end with Disconnect.
type Session struct {
	mu sync.RWMutex

	id         string
	info       device.Info
	capability device.Capability
	options    Options

	state     State
	endpoint  string
	transport transport.Client

	// Last decoded snapshots. heatingState and cleaningState stay nil on
	// devices that never publish them.
	currentState  *wire.OperatingState
	heatingState  *wire.HeatingOperatingState
	cleaningState *wire.CleaningState
	environment   *wire.SensorState

	listeners    []listenerEntry
	nextListener int

	// First-data gating: closed exactly once when the first message of
	// the kind arrives.
	firstState  chan struct{}
	firstSensor chan struct{}
	stateOnce   sync.Once
	sensorOnce  sync.Once

	// Sensor poller
	pollStop chan struct{}
	pollOnce sync.Once
	pollWG   sync.WaitGroup
}

// New creates a session for a device. The credential in info must already
// be decrypted; it becomes the broker password on Connect.
func New(info device.Info, options Options) *Session {
	s := &Session{
		id:          uuid.NewString(),
		info:        info,
		capability:  device.CapabilityFor(info.ProductType),
		options:     options.withDefaults(),
		state:       StateCreated,
		firstState:  make(chan struct{}),
		firstSensor: make(chan struct{}),
	}
	if !info.ProductType.Known() {
		s.warnLog("unknown product type, treating as plain fan",
			"product_type", info.ProductType,
			"serial", info.Serial)
	}
	return s
}

// ID returns the session's UUID, which tags its protocol log events.
func (s *Session) ID() string {
	return s.id
}

// Info returns the device identity the session was constructed with.
func (s *Session) Info() device.Info {
	return s.info
}

// Capability returns the device's capability table.
func (s *Session) Capability() device.Capability {
	return s.capability
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Connected reports whether the transport session is up. Commands are
// accepted while connected, even before the first data arrived.
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAwaitingFirstData || s.state == StateAvailable
}

// DeviceAvailable reports whether the device's first operating state and,
// for sensor-polling devices, first sensor reading have each arrived at
// least once.
func (s *Session) DeviceAvailable() bool {
	select {
	case <-s.firstState:
	default:
		return false
	}
	if s.capability.SensorPolling {
		select {
		case <-s.firstSensor:
		default:
			return false
		}
	}
	return true
}

// Endpoint returns the broker address the session connected to, or the
// empty string before one was resolved.
func (s *Session) Endpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.endpoint
}

// CurrentState returns the last decoded operating state, or nil before
// the first one arrived. Vacuums report through CleaningState instead.
func (s *Session) CurrentState() *wire.OperatingState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentState
}

// HeatingState returns the last decoded operating state including the
// heating fields. Nil on devices without a heating element.
func (s *Session) HeatingState() *wire.HeatingOperatingState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heatingState
}

// CleaningState returns the vacuum's last decoded cleaning state. Nil on
// fans.
func (s *Session) CleaningState() *wire.CleaningState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cleaningState
}

// EnvironmentalState returns the last decoded sensor reading, or nil
// before the first one arrived.
func (s *Session) EnvironmentalState() *wire.SensorState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.environment
}

// Connect establishes the session: resolve the endpoint unless one was
// pinned, perform the broker handshake, subscribe to the status topic,
// request the current state and block until the device's first data
// arrived. On a nil return the session is StateAvailable.
//
// A discovery failure returns the session to StateCreated and Connect may
// be retried. Every later failure spends the session.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateCreated:
	case StateDisconnected:
		s.mu.Unlock()
		return ErrSessionClosed
	default:
		s.mu.Unlock()
		return ErrAlreadyConnected
	}

	addr := s.options.Endpoint
	next := StateConnecting
	if addr == "" {
		next = StateDiscovering
	}
	s.state = next
	s.mu.Unlock()
	s.logStateChange(StateCreated, next, "")

	if addr == "" {
		resolved, err := s.resolve(ctx)
		if err != nil {
			s.logError(log.LayerSession, err, "discovery")
			s.setState(StateCreated, "discovery failed")
			return err
		}
		addr = resolved
		s.setState(StateConnecting, "")
	}

	client := s.options.Transport(transport.Config{
		Addr:             addr,
		Username:         s.info.Serial,
		Password:         s.info.Credential,
		ClientID:         s.info.Serial,
		MQTTVersion:      s.capability.MQTTVersion,
		ConnectTimeout:   s.options.ConnectTimeout,
		OnConnectionLost: s.handleConnectionLost,
	})

	s.debugLog("connecting to broker",
		"serial", s.info.Serial,
		"addr", addr,
		"mqtt_version", s.capability.MQTTVersion)

	if err := client.Connect(ctx); err != nil {
		s.logError(log.LayerTransport, err, "connect")
		s.setState(StateDisconnected, "broker handshake failed")
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	s.mu.Lock()
	s.endpoint = addr
	s.transport = client
	s.mu.Unlock()
	s.setState(StateAwaitingFirstData, "")

	if err := client.Subscribe(s.info.StatusTopic(), 0, s.handleMessage); err != nil {
		s.logError(log.LayerTransport, err, "subscribe")
		s.disconnect("subscribe failed")
		return err
	}

	if err := s.publishTo(client, wire.MsgRequestCurrentState, 0, wire.BuildStateRequest(time.Now())); err != nil {
		s.disconnect("state request failed")
		return err
	}

	if s.capability.SensorPolling {
		s.startPoller(client)
	}

	if err := s.awaitFirstData(ctx); err != nil {
		s.logError(log.LayerSession, err, "first data wait")
		s.disconnect("first data wait failed")
		return err
	}

	if !s.setState(StateAvailable, "first state synchronized") {
		// Lost the connection while waiting.
		return ErrNotConnected
	}
	return nil
}

// resolve locates the device's broker on the local network.
func (s *Session) resolve(ctx context.Context) (string, error) {
	resolver := s.options.Resolver
	if resolver == nil {
		mdns, err := discovery.NewMDNSResolver(discovery.DefaultConfig())
		if err != nil {
			return "", fmt.Errorf("failed to create resolver: %w", err)
		}
		resolver = mdns
	}

	endpoint, err := resolver.Resolve(ctx, s.info.Serial)
	if err != nil {
		return "", fmt.Errorf("failed to resolve device %s: %w", s.info.Serial, err)
	}

	s.debugLog("resolved device", "serial", s.info.Serial, "addr", endpoint.Addr())
	return endpoint.Addr(), nil
}

// awaitFirstData blocks until the first-data channels are closed, sharing
// one timeout across both waits.
func (s *Session) awaitFirstData(ctx context.Context) error {
	timeout := time.NewTimer(s.options.FirstDataTimeout)
	defer timeout.Stop()

	waits := []<-chan struct{}{s.firstState}
	if s.capability.SensorPolling {
		waits = append(waits, s.firstSensor)
	}

	for _, ch := range waits {
		select {
		case <-ch:
		case <-timeout.C:
			return ErrFirstDataTimeout
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Disconnect ends the session: the poller is stopped and waited for, the
// transport is closed, and the session is spent. Idempotent.
func (s *Session) Disconnect() {
	s.disconnect("disconnect requested")
}

func (s *Session) disconnect(reason string) {
	s.mu.Lock()
	if s.state == StateDisconnected {
		s.mu.Unlock()
		return
	}
	old := s.state
	s.state = StateDisconnected
	client := s.transport
	s.mu.Unlock()

	s.signalPollStop()
	s.pollWG.Wait()
	if client != nil {
		client.Disconnect()
	}
	s.logStateChange(old, StateDisconnected, reason)
}

// handleConnectionLost runs on the transport's goroutine when an
// established connection drops. The poller is signalled but not waited
// for; it exits on its own.
func (s *Session) handleConnectionLost(err error) {
	s.warnLog("connection lost", "serial", s.info.Serial, "error", err)
	s.logError(log.LayerTransport, err, "connection lost")

	s.mu.Lock()
	if s.state == StateDisconnected {
		s.mu.Unlock()
		return
	}
	old := s.state
	s.state = StateDisconnected
	s.mu.Unlock()

	s.signalPollStop()
	s.logStateChange(old, StateDisconnected, "connection lost")
}

// handleMessage classifies, decodes, stores and dispatches one inbound
// message. Malformed and unrecognized messages are logged and dropped;
// they never end the session.
func (s *Session) handleMessage(topic string, payload []byte) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	if state == StateDisconnected {
		return
	}

	kind, err := wire.Classify(payload)
	if err != nil {
		s.warnLog("dropping malformed message", "topic", topic, "error", err)
		s.logError(log.LayerWire, err, "classify")
		return
	}

	s.logInbound(topic, payload, kind)

	if kind == wire.KindUnknown {
		s.debugLog("dropping unrecognized message", "topic", topic)
		return
	}

	body, err := s.decodeMessage(kind, payload)
	if err != nil {
		s.warnLog("failed to decode message", "kind", kind, "error", err)
		s.logError(log.LayerWire, err, "decode "+kind.String())
		return
	}

	s.warnUnknownTokens(body)
	s.storeMessage(kind, body)
	s.dispatch(Message{Kind: kind, Topic: topic, Body: body})
}

// RequestCurrentState asks the device to publish its operating state.
// State requests are best effort on every model; only commands that
// change device state go out at QoS 1.
func (s *Session) RequestCurrentState() error {
	return s.publishCommand(wire.MsgRequestCurrentState, 0, wire.BuildStateRequest(time.Now()))
}

// RequestEnvironmentalState asks the device to publish a fresh sensor
// reading. The background poller issues the same request periodically.
func (s *Session) RequestEnvironmentalState() error {
	if !s.capability.SensorPolling {
		return ErrCommandNotSupported
	}
	return s.publishCommand(wire.MsgRequestSensorData, 0, wire.BuildSensorRequest(time.Now()))
}

// SetConfiguration applies a partial configuration change. Fields left
// unset in change keep their current value; the merge baseline is the
// last decoded operating state, so the first state must have arrived.
func (s *Session) SetConfiguration(change wire.StateSet) error {
	var (
		payload []byte
		err     error
	)
	switch s.capability.Kind {
	case device.KindVacuum:
		return ErrCommandNotSupported
	case device.KindHeatingFan:
		payload, err = wire.BuildHeatingStateSet(s.HeatingState(), change, time.Now())
	default:
		payload, err = wire.BuildStateSet(s.CurrentState(), change, time.Now())
	}
	if err != nil {
		return err
	}
	return s.publishCommand(wire.MsgStateSet, 1, payload)
}

// StartCleaning starts an immediate full clean.
func (s *Session) StartCleaning() error {
	return s.cleaningCommand(wire.VacuumCommandStart)
}

// PauseCleaning pauses the running clean cycle.
func (s *Session) PauseCleaning() error {
	return s.cleaningCommand(wire.VacuumCommandPause)
}

// ResumeCleaning resumes a paused clean cycle.
func (s *Session) ResumeCleaning() error {
	return s.cleaningCommand(wire.VacuumCommandResume)
}

// AbortCleaning aborts the clean cycle and sends the vacuum home.
func (s *Session) AbortCleaning() error {
	return s.cleaningCommand(wire.VacuumCommandAbort)
}

func (s *Session) cleaningCommand(cmd wire.VacuumCommand) error {
	if s.capability.Kind != device.KindVacuum {
		return ErrCommandNotSupported
	}
	return s.publishCommand(string(cmd), 1, wire.BuildVacuumCommand(cmd, time.Now()))
}

// SetPowerMode changes the vacuum's default suction level.
func (s *Session) SetPowerMode(mode wire.PowerMode) error {
	if s.capability.Kind != device.KindVacuum {
		return ErrCommandNotSupported
	}
	return s.publishCommand(wire.MsgStateSet, 1, wire.BuildPowerModeCommand(mode, time.Now()))
}

// publishCommand sends a command if the session is connected. Commands on
// a session that is not connected are dropped with a warning; callers
// racing a disconnect may ignore the error.
func (s *Session) publishCommand(msg string, qos byte, payload []byte) error {
	s.mu.RLock()
	client := s.transport
	connected := s.state == StateAwaitingFirstData || s.state == StateAvailable
	s.mu.RUnlock()

	if !connected || client == nil {
		s.warnLog("dropping command, session not connected",
			"serial", s.info.Serial,
			"msg", msg)
		return ErrNotConnected
	}
	return s.publishTo(client, msg, qos, payload)
}

// publishTo publishes a command payload on the device's command topic and
// records it in the protocol log.
func (s *Session) publishTo(client transport.Client, msg string, qos byte, payload []byte) error {
	topic := s.info.CommandTopic()
	s.logOutbound(topic, msg, qos, payload)

	if err := client.Publish(topic, qos, payload); err != nil {
		s.logError(log.LayerTransport, err, "publish "+msg)
		return err
	}
	return nil
}

// setState moves the session to next and reports whether it did. A spent
// session never changes state again.
func (s *Session) setState(next State, reason string) bool {
	s.mu.Lock()
	old := s.state
	if old == StateDisconnected || old == next {
		s.mu.Unlock()
		return false
	}
	s.state = next
	s.mu.Unlock()

	s.logStateChange(old, next, reason)
	return true
}

func (s *Session) baseEvent(category log.Category, layer log.Layer) log.Event {
	s.mu.RLock()
	addr := s.endpoint
	s.mu.RUnlock()

	return log.Event{
		Timestamp:   time.Now(),
		SessionID:   s.id,
		Layer:       layer,
		Category:    category,
		Serial:      s.info.Serial,
		ProductType: string(s.info.ProductType),
		RemoteAddr:  addr,
	}
}

func (s *Session) logInbound(topic string, payload []byte, kind wire.MessageKind) {
	event := s.baseEvent(log.CategoryMessage, log.LayerWire)
	event.Direction = log.DirectionIn
	event.Message = log.NewMessageEvent(topic, payload)
	event.Message.Kind = kind
	s.options.ProtocolLogger.Log(event)
}

func (s *Session) logOutbound(topic, msg string, qos byte, payload []byte) {
	event := s.baseEvent(log.CategoryMessage, log.LayerWire)
	event.Direction = log.DirectionOut
	event.Message = log.NewMessageEvent(topic, payload)
	event.Message.Msg = msg
	event.Message.QoS = qos
	s.options.ProtocolLogger.Log(event)
}

func (s *Session) logStateChange(old, next State, reason string) {
	event := s.baseEvent(log.CategoryState, log.LayerSession)
	event.StateChange = &log.StateChangeEvent{
		OldState: old.String(),
		NewState: next.String(),
		Reason:   reason,
	}
	s.options.ProtocolLogger.Log(event)

	s.debugLog("session state changed",
		"serial", s.info.Serial,
		"old", old,
		"new", next,
		"reason", reason)
}

func (s *Session) logError(layer log.Layer, err error, context string) {
	event := s.baseEvent(log.CategoryError, layer)
	data := &log.ErrorEventData{
		Layer:   layer,
		Message: err.Error(),
		Context: context,
	}
	var refused *transport.ConnectionRefusedError
	if errors.As(err, &refused) {
		code := int(refused.Code)
		data.Code = &code
	}
	event.Error = data
	s.options.ProtocolLogger.Log(event)
}

// debugLog logs a debug message if operational logging is enabled.
func (s *Session) debugLog(msg string, args ...any) {
	if s.options.Logger != nil {
		s.options.Logger.Debug(msg, args...)
	}
}

// warnLog logs a warning if operational logging is enabled.
func (s *Session) warnLog(msg string, args ...any) {
	if s.options.Logger != nil {
		s.options.Logger.Warn(msg, args...)
	}
}
