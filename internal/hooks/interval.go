package hooks

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/errors"
)

// Interval calls a function once per period while running.
//
// It is driven by an [animation.Ticker], so ticks are delivered from the
// engine frame loop on the UI thread and follow the animation clock (which
// the widget tester replaces with a fake). Tick k fires on the first frame at
// or after k*period since Start. A frame that lands several periods late
// delivers each missed tick once.
//
// Interval implements [core.Disposable] and can be handed to core.UseController.
type Interval struct {
	period time.Duration
	onTick func()
	ticker *animation.Ticker
	fired  int64
}

// NewInterval creates a stopped interval.
func NewInterval(period time.Duration, onTick func()) *Interval {
	iv := &Interval{period: period, onTick: onTick}
	iv.ticker = animation.NewTicker(iv.step)
	return iv
}

// Start begins ticking. Calling Start on a running interval does nothing, so
// there is never more than one schedule per Interval.
func (iv *Interval) Start() {
	if iv.ticker.IsActive() {
		return
	}
	iv.fired = 0
	iv.ticker.Start()
}

// Stop cancels pending ticks. Stopping a stopped interval is a no-op.
func (iv *Interval) Stop() {
	iv.ticker.Stop()
}

// SetPeriod changes the period. A running interval restarts its schedule
// from now, so no tick is delivered early under the new period.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period == iv.period {
		return
	}
	iv.period = period
	if iv.ticker.IsActive() {
		iv.ticker.Stop()
		iv.fired = 0
		iv.ticker.Start()
	}
}

// Period returns the current period.
func (iv *Interval) Period() time.Duration {
	return iv.period
}

// Running reports whether the interval is scheduled.
func (iv *Interval) Running() bool {
	return iv.ticker.IsActive()
}

// Ticks returns the number of ticks delivered since the last Start.
func (iv *Interval) Ticks() int64 {
	return iv.fired
}

// Dispose stops the interval and drops its callback.
func (iv *Interval) Dispose() {
	iv.Stop()
	iv.onTick = nil
}

func (iv *Interval) step(elapsed time.Duration) {
	defer errors.Recover("hooks.Interval.tick")
	if iv.period <= 0 {
		return
	}
	due := int64(elapsed / iv.period)
	// onTick may stop or dispose the interval.
	for iv.fired < due && iv.ticker.IsActive() {
		iv.fired++
		if iv.onTick != nil {
			iv.onTick()
		}
	}
}
