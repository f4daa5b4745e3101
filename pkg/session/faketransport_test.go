package session_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/purelink-protocol/purelink-go/pkg/device"
	"github.com/purelink-protocol/purelink-go/pkg/discovery"
	"github.com/purelink-protocol/purelink-go/pkg/log"
	"github.com/purelink-protocol/purelink-go/pkg/session"
	"github.com/purelink-protocol/purelink-go/pkg/transport"
)

// Canned device payloads, shaped like real appliance traffic.
const (
	fanStatePayload = `{"msg":"CURRENT-STATE","time":"2023-05-01T10:00:00Z","mode-reason":"LAPP","product-state":{"fmod":"FAN","fnst":"FAN","nmod":"OFF","fnsp":"0004","oson":"ON","filf":"2087","qtar":"0003","rhtm":"ON"}}`

	fanSensorPayload = `{"msg":"ENVIRONMENTAL-CURRENT-SENSOR-DATA","time":"2023-05-01T10:00:05Z","data":{"tact":"2967","hact":"0054","pact":"0004","vact":"0005","sltm":"OFF"}}`

	heatingStatePayload = `{"msg":"CURRENT-STATE","time":"2023-05-01T10:00:00Z","mode-reason":"LAPP","product-state":{"fmod":"OFF","fnst":"OFF","nmod":"OFF","fnsp":"AUTO","oson":"OFF","filf":"1543","qtar":"0004","rhtm":"ON","tilt":"OK","ffoc":"ON","hmax":"2973","hmod":"OFF","hsta":"OFF"}}`

	vacuumStatePayload = `{"msg":"CURRENT-STATE","time":"2023-05-01T10:00:00Z","state":"INACTIVE_CHARGED","fullCleanType":"","globalPosition":[120,240],"currentVacuumPowerMode":"fullPower","cleanId":"0e709b2f-0a8b-4a0a-9149-1b3a24c40151","batteryChargeLevel":95}`
)

// fakeTransport is a scriptable in-memory broker connection. Canned
// replies registered with respondWith are delivered synchronously from
// Publish, imitating a device that answers requests.
type fakeTransport struct {
	mu sync.Mutex

	config     transport.Config
	connectErr error
	connected  bool

	subscriptions map[string]transport.MessageHandler
	published     []publishedMessage
	replies       map[string][][]byte
}

type publishedMessage struct {
	topic   string
	qos     byte
	payload []byte
}

var _ transport.Client = (*fakeTransport)(nil)

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		subscriptions: make(map[string]transport.MessageHandler),
		replies:       make(map[string][][]byte),
	}
}

// factory hands the fake to the session and records the transport config
// the session built.
func (f *fakeTransport) factory() session.TransportFactory {
	return func(config transport.Config) transport.Client {
		f.mu.Lock()
		f.config = config
		f.mu.Unlock()
		return f
	}
}

func (f *fakeTransport) Connect(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connected = true
	return nil
}

func (f *fakeTransport) Subscribe(topic string, qos byte, handler transport.MessageHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.connected {
		return transport.ErrNotConnected
	}
	f.subscriptions[topic] = handler
	return nil
}

func (f *fakeTransport) Publish(topic string, qos byte, payload []byte) error {
	f.mu.Lock()
	if !f.connected {
		f.mu.Unlock()
		return transport.ErrNotConnected
	}
	f.published = append(f.published, publishedMessage{
		topic:   topic,
		qos:     qos,
		payload: append([]byte(nil), payload...),
	})
	replies := f.replies[envelopeMsg(payload)]
	f.mu.Unlock()

	for _, reply := range replies {
		f.deliver(reply)
	}
	return nil
}

func (f *fakeTransport) IsConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeTransport) Disconnect() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = false
}

// respondWith registers canned status payloads delivered whenever a
// command with the given msg discriminator is published.
func (f *fakeTransport) respondWith(msg string, replies ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, reply := range replies {
		f.replies[msg] = append(f.replies[msg], []byte(reply))
	}
}

// deliver pushes a payload to the session's status subscription.
func (f *fakeTransport) deliver(payload []byte) {
	f.mu.Lock()
	var (
		topic   string
		handler transport.MessageHandler
	)
	for t, h := range f.subscriptions {
		topic, handler = t, h
	}
	f.mu.Unlock()

	if handler != nil {
		handler(topic, payload)
	}
}

func (f *fakeTransport) subscribedTopics() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	topics := make([]string, 0, len(f.subscriptions))
	for topic := range f.subscriptions {
		topics = append(topics, topic)
	}
	return topics
}

func (f *fakeTransport) capturedConfig() transport.Config {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.config
}

// publishedMsgs returns the published messages whose envelope msg field
// matches.
func (f *fakeTransport) publishedMsgs(msg string) []publishedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []publishedMessage
	for _, p := range f.published {
		if envelopeMsg(p.payload) == msg {
			out = append(out, p)
		}
	}
	return out
}

func (f *fakeTransport) publishCount(msg string) int {
	return len(f.publishedMsgs(msg))
}

func envelopeMsg(payload []byte) string {
	var envelope struct {
		Msg string `json:"msg"`
	}
	_ = json.Unmarshal(payload, &envelope)
	return envelope.Msg
}

// fakeResolver scripts discovery results.
type fakeResolver struct {
	mu       sync.Mutex
	endpoint *discovery.Endpoint
	err      error
	calls    int
}

var _ discovery.Resolver = (*fakeResolver)(nil)

func (r *fakeResolver) Resolve(ctx context.Context, serial string) (*discovery.Endpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.endpoint, nil
}

func (r *fakeResolver) set(endpoint *discovery.Endpoint, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoint = endpoint
	r.err = err
}

// captureLogger records protocol events for inspection.
type captureLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (c *captureLogger) Log(event log.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) all() []log.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]log.Event(nil), c.events...)
}

func (c *captureLogger) byCategory(category log.Category) []log.Event {
	var out []log.Event
	for _, event := range c.all() {
		if event.Category == category {
			out = append(out, event)
		}
	}
	return out
}

func testInfo(productType device.ProductType) device.Info {
	return device.Info{
		Serial:      "NN2-EU-ABC1234A",
		Name:        "Living room",
		ProductType: productType,
		Version:     "21.03.08",
		Credential:  "password1",
	}
}

// newTestSession builds a session wired to the fake transport. Discovery
// is skipped with a pinned endpoint unless the options carry a resolver.
func newTestSession(fake *fakeTransport, productType device.ProductType, opts session.Options) *session.Session {
	if opts.Endpoint == "" && opts.Resolver == nil {
		opts.Endpoint = "192.0.2.10:1883"
	}
	opts.Transport = fake.factory()
	return session.New(testInfo(productType), opts)
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
