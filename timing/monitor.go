package timing

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"

	"github.com/guiguan/caster"
)

// Monitor broadcasts finished Bags to any number of subscribers. A
// long-running recursion publishes its per-level records as subtrees
// complete, without knowing whether anyone is listening; dashboards or tests
// subscribe and consume at their own pace.
type Monitor struct {
	cast *caster.Caster
}

// NewMonitor creates a monitor ready for publishing.
func NewMonitor() *Monitor {
	return &Monitor{cast: caster.New(nil)}
}

// Publish broadcasts a bag to all current subscribers. Bags without
// measurements (from Empty timers) are dropped.
func (m *Monitor) Publish(b Bag) {
	if b.seconds == nil {
		return
	}
	m.cast.Pub(b)
}

// Subscribe registers a new subscriber channel. The channel receives every
// bag published after the subscription and is closed when the monitor shuts
// down or ctx is done. ok is false if the monitor has already been closed.
func (m *Monitor) Subscribe(ctx context.Context) (chan interface{}, bool) {
	ch, ok := m.cast.Sub(ctx, 1)
	if !ok {
		tracer().Debugf("timing: subscription to a closed monitor")
		return nil, false
	}
	return ch, true
}

// Unsubscribe removes a subscriber channel obtained from Subscribe.
func (m *Monitor) Unsubscribe(ch chan interface{}) {
	m.cast.Unsub(ch)
}

// Close shuts the monitor down and closes all subscriber channels.
func (m *Monitor) Close() {
	m.cast.Close()
}
