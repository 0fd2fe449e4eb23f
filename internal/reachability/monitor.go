// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reachability tracks whether the remote API can be reached and
// tells subscribers when the client should try to synchronize: when the API
// comes back after being unreachable, and when the application returns to
// the foreground.
package reachability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/nutri-audit-sync/internal/logger"
)

// ErrUnreachable is returned by [Monitor.Check] when the probe fails.
var ErrUnreachable = errors.New("remote api unreachable")

// EventKind says why an [Event] was emitted.
type EventKind string

const (
	// EventConnected is emitted on every transition to reachable.
	EventConnected EventKind = "connected"
	// EventForeground is emitted on every [Monitor.NotifyForeground] call.
	EventForeground EventKind = "foreground"
)

// Event is delivered to subscribers.
type Event struct {
	Kind EventKind
	At   time.Time
}

// Prober answers whether the remote API is reachable.
type Prober interface {
	Ping(ctx context.Context) error
}

// subscriberBuffer bounds how many undelivered events a slow subscriber may
// hold. Further events are dropped for that subscriber; a pending trigger
// already covers them.
const subscriberBuffer = 4

// Monitor probes the remote API periodically and fans out [Event] values.
// The zero value is not usable; construct with [NewMonitor].
type Monitor struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	mu      sync.Mutex
	online  bool
	known   bool
	subs    map[int]chan Event
	nextSub int
	stopped bool
	done    chan struct{}

	logger *logger.Logger
}

// NewMonitor returns a monitor probing every interval. Each probe is bounded
// by the interval as well.
func NewMonitor(prober Prober, interval time.Duration, logger *logger.Logger) *Monitor {
	return &Monitor{
		prober:   prober,
		interval: interval,
		timeout:  interval,
		now:      time.Now,
		subs:     make(map[int]chan Event),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Check performs a live probe and updates the reachability state. It returns
// nil when the API answered, or an error wrapping [ErrUnreachable].
func (m *Monitor) Check(ctx context.Context) error {
	probeCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	err := m.prober.Ping(probeCtx)
	m.setOnline(err == nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return nil
}

// Online reports the result of the latest probe. It is false before the
// first probe.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wasOnline, wasKnown := m.online, m.known
	m.online, m.known = online, true

	if online && (!wasOnline || !wasKnown) {
		m.logger.Info().Str("func", "Monitor.setOnline").Msg("remote api reachable")
		m.emitLocked(EventConnected)
	}
	if !online && (wasOnline || !wasKnown) {
		m.logger.Info().Str("func", "Monitor.setOnline").Msg("remote api unreachable")
	}
}

// NotifyForeground records that the application returned to the foreground.
func (m *Monitor) NotifyForeground() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emitLocked(EventForeground)
}

func (m *Monitor) emitLocked(kind EventKind) {
	if m.stopped {
		return
	}

	ev := Event{Kind: kind, At: m.now()}
	for id, ch := range m.subs {
		select {
		case ch <- ev:
		default:
			m.logger.Debug().
				Str("func", "Monitor.emit").
				Int("subscriber", id).
				Str("event", string(kind)).
				Msg("subscriber busy, event dropped")
		}
	}
}

// Subscribe returns a channel receiving every future event and a function
// that cancels the subscription. The channel is closed on cancel or Stop.
func (m *Monitor) Subscribe() (<-chan Event, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if m.stopped {
		close(ch)
		return ch, func() {}
	}

	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if sub, ok := m.subs[id]; ok {
				delete(m.subs, id)
				close(sub)
			}
		})
	}
}

// Run probes immediately and then every interval until ctx is done or Stop
// is called.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info().Dur("interval", m.interval).Msg("reachability monitor started")
	defer m.logger.Info().Msg("reachability monitor stopped")

	_ = m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-m.done:
			return nil
		case <-ticker.C:
			if err := m.Check(ctx); err != nil {
				m.logger.Debug().Err(err).Str("func", "Monitor.Run").Msg("probe failed")
			}
		}
	}
}

// Stop ends Run and closes every subscription. It does not wait for, or
// cancel, work a subscriber started in response to an earlier event.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return
	}
	m.stopped = true
	close(m.done)

	for id, ch := range m.subs {
		delete(m.subs, id)
		close(ch)
	}
}
