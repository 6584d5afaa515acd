package main

import (
	"fmt"
	"time"

	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/hooksdemo/internal/config"
	"github.com/go-drift/hooksdemo/internal/hooks"
)

// EffectCard runs a seconds counter while started. The tick source is
// started and stopped by an effect keyed on the running flag.
type EffectCard struct {
	core.StatefulBase
	Heading config.CardText
	Period  time.Duration
}

func (c EffectCard) CreateState() core.State {
	return &effectCardState{heading: c.Heading, period: c.period()}
}

func (c EffectCard) period() time.Duration {
	if c.Period <= 0 {
		return time.Second
	}
	return c.Period
}

type effectCardState struct {
	core.StateBase
	heading  config.CardText
	period   time.Duration
	seconds  *core.Managed[int]
	running  *core.Managed[bool]
	interval *hooks.Interval
	ticking  *hooks.Effect[bool]
}

func (s *effectCardState) InitState() {
	s.seconds = core.NewManaged(s, 0)
	s.running = core.NewManaged(s, false)
	s.interval = core.UseController(s, func() *hooks.Interval {
		return hooks.NewInterval(s.period, s.tick)
	})
	// Registered after the interval, so its cleanup runs first on dispose.
	s.ticking = hooks.UseEffect[bool](s)
	s.syncTicker()
}

func (s *effectCardState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(EffectCard); ok {
		s.update(w)
	}
}

// update applies a rebuilt widget. A new period reschedules a running timer
// without touching the elapsed count.
func (s *effectCardState) update(w EffectCard) {
	s.heading = w.Heading
	if period := w.period(); period != s.period {
		s.period = period
		s.interval.SetPeriod(period)
	}
}

func (s *effectCardState) Build(ctx core.BuildContext) core.Widget {
	label, color := "Start", startColor
	if s.running.Value() {
		label, color = "Stop", stopColor
	}
	return card(s.heading,
		valueText(fmt.Sprintf("%d seconds", s.seconds.Value())),
		buttonRow(
			actionButton(ctx, label, color, s.toggle),
			actionButton(ctx, "Reset", accentColor, s.reset),
		),
	)
}

func (s *effectCardState) toggle() {
	s.running.Set(!s.running.Value())
	s.syncTicker()
}

func (s *effectCardState) reset() {
	s.seconds.Set(0)
}

func (s *effectCardState) syncTicker() {
	s.ticking.Sync(s.running.Value(), func() func() {
		if !s.running.Value() {
			return nil
		}
		s.interval.Start()
		return s.interval.Stop
	})
}

func (s *effectCardState) tick() {
	if s.IsDisposed() {
		return
	}
	s.seconds.Update(func(n int) int { return n + 1 })
}
