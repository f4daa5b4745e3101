// Package session maintains live connections to appliances on the local
// network.
//
// A Session owns one device end to end: it resolves the device's broker
// address (unless an endpoint was pinned), authenticates with the device
// serial and decrypted credential, synchronizes an initial state snapshot
// and then keeps the state getters fresh while dispatching every decoded
// message to registered listeners.
//
// # Lifecycle
//
//	CREATED --> DISCOVERING --> CONNECTING --> AWAITING_FIRST_DATA --> AVAILABLE
//	                |               |                  |                  |
//	                v               v                  v                  v
//	            CREATED        DISCONNECTED       DISCONNECTED       DISCONNECTED
//
// A failed discovery returns the session to CREATED and Connect may simply
// be called again. Any failure once the broker handshake has started
// spends the session: further Connect calls return ErrSessionClosed and a
// fresh session must be constructed. Disconnect is idempotent and safe
// from any goroutine.
//
// Connect blocks until the device answered with its first operating state
// (and, for fans, the first environmental sensor reading), so a nil return
// means the state getters are populated and commands can merge against a
// real snapshot.
//
// # Usage
//
//	sess := session.New(device.Info{
//		Serial:      "NN2-EU-ABC1234A",
//		ProductType: device.ProductCoolTower,
//		Credential:  password,
//	}, session.Options{})
//
//	if err := sess.Connect(ctx); err != nil {
//		return err
//	}
//	defer sess.Disconnect()
//
//	sess.AddListener(func(msg session.Message) {
//		if msg.Kind == wire.KindSensorState {
//			fmt.Println(sess.EnvironmentalState().Temperature)
//		}
//	})
//
//	err := sess.SetConfiguration(wire.StateSet{Speed: wire.FanSpeedAuto})
//
// # Concurrency
//
// Inbound messages arrive on the transport's network goroutine; listeners
// run synchronously on that goroutine in registration order and must not
// block. State mutations land before the listener callback for the same
// message fires, so a listener can rely on the getters reflecting at
// least the message it is handling. The background sensor poller is the
// only other goroutine a session owns.
package session
