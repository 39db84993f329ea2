package herocanvas

import (
	"context"
	"time"
)

// FrameRequester schedules a callback for the next display refresh. It must
// accept requests made from inside a running callback.
type FrameRequester interface {
	RequestFrame(fn func())
}

// QueueHost is a FrameRequester that runs callbacks when told to. Tests step
// it directly; terminal and headless hosts pump it from their own loops.
type QueueHost struct {
	pending []func()
	running []func()
}

func (q *QueueHost) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Pump runs every callback requested before the call and returns how many
// ran. Callbacks requested while pumping wait for the next Pump.
func (q *QueueHost) Pump() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running, q.pending = q.pending, q.running[:0]
	for i, fn := range q.running {
		fn()
		q.running[i] = nil
	}
	n := len(q.running)
	q.running = q.running[:0]
	return n
}

// PumpN pumps up to n times, stopping early once nothing is pending. It
// returns the number of callbacks run.
func (q *QueueHost) PumpN(n int) int {
	total := 0
	for range n {
		ran := q.Pump()
		if ran == 0 {
			break
		}
		total += ran
	}
	return total
}

// Pending returns the number of callbacks waiting for the next Pump.
func (q *QueueHost) Pending() int {
	return len(q.pending)
}

// TickerHost pumps a QueueHost from a time.Ticker. Callbacks run on the
// goroutine that calls Run.
type TickerHost struct {
	QueueHost
	Interval time.Duration
}

// NewTickerHost returns a host firing every interval, or at 60 Hz when
// interval is not positive.
func NewTickerHost(interval time.Duration) *TickerHost {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &TickerHost{Interval: interval}
}

// Run pumps pending callbacks on every tick until ctx is cancelled.
func (t *TickerHost) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.Pump()
		}
	}
}
