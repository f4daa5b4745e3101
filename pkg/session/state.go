package session

// State represents the session lifecycle state.
type State uint8

const (
	// StateCreated indicates the session has not attempted to connect yet.
	StateCreated State = iota

	// StateDiscovering indicates the device's broker address is being
	// resolved on the local network.
	StateDiscovering

	// StateConnecting indicates the broker handshake is in progress.
	StateConnecting

	// StateAwaitingFirstData indicates the handshake succeeded and the
	// session is waiting for the device's first state messages.
	StateAwaitingFirstData

	// StateAvailable indicates the session is fully synchronized.
	StateAvailable

	// StateDisconnected indicates the session ended. Sessions are single
	// use; a disconnected session cannot be reconnected.
	StateDisconnected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "CREATED"
	case StateDiscovering:
		return "DISCOVERING"
	case StateConnecting:
		return "CONNECTING"
	case StateAwaitingFirstData:
		return "AWAITING_FIRST_DATA"
	case StateAvailable:
		return "AVAILABLE"
	case StateDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}
