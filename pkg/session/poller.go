package session

import (
	"time"

	"github.com/purelink-protocol/purelink-go/pkg/transport"
	"github.com/purelink-protocol/purelink-go/pkg/wire"
)

// startPoller launches the background sensor poller. At most one poller
// runs per session.
func (s *Session) startPoller(client transport.Client) {
	stop := make(chan struct{})
	s.mu.Lock()
	s.pollStop = stop
	s.mu.Unlock()

	s.pollWG.Add(1)
	go s.pollLoop(client, stop)
}

// signalPollStop closes the poller's stop channel once. Safe to call
// whether or not a poller was started.
func (s *Session) signalPollStop() {
	s.mu.RLock()
	stop := s.pollStop
	s.mu.RUnlock()

	if stop == nil {
		return
	}
	s.pollOnce.Do(func() { close(stop) })
}

// pollLoop keeps environmental readings fresh. The first request goes out
// immediately so Connect can synchronize on the reply; after that one
// request per interval until stop is closed.
func (s *Session) pollLoop(client transport.Client, stop <-chan struct{}) {
	defer s.pollWG.Done()

	timer := time.NewTimer(s.options.PollInterval)
	defer timer.Stop()

	for {
		if err := s.publishTo(client, wire.MsgRequestSensorData, 0, wire.BuildSensorRequest(time.Now())); err != nil {
			s.debugLog("sensor request failed", "serial", s.info.Serial, "error", err)
		}

		select {
		case <-stop:
			return
		case <-timer.C:
			timer.Reset(s.options.PollInterval)
		}
	}
}
