package main

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/hooksdemo/internal/config"
	"github.com/go-drift/hooksdemo/internal/hooks"
)

// CallbackCard hands its buttons action handles with controlled identity.
// The show action is rebound when the count changes; the increment action
// is created once.
type CallbackCard struct {
	core.StatefulBase
	Heading config.CardText

	notify notifyFunc
}

func (c CallbackCard) CreateState() core.State {
	notify := c.notify
	if notify == nil {
		notify = showAlert
	}
	return &callbackCardState{heading: c.Heading, notify: notify}
}

type callbackCardState struct {
	core.StateBase
	heading   config.CardText
	notify    notifyFunc
	count     *core.Managed[int]
	toggle    *core.Managed[bool]
	show      *hooks.Callback[int]
	increment *hooks.Action
}

func (s *callbackCardState) InitState() {
	s.count = core.NewManaged(s, 0)
	s.toggle = core.NewManaged(s, false)
	s.show = hooks.NewCallback[int]()
	s.increment = hooks.Stable(func() {
		s.count.Update(func(c int) int { return c + 1 })
	})
}

func (s *callbackCardState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(CallbackCard); ok {
		s.heading = w.Heading
	}
}

func (s *callbackCardState) Build(ctx core.BuildContext) core.Widget {
	show, increment := s.actions(ctx)
	return card(s.heading,
		valueText(fmt.Sprintf("Count: %d", s.count.Value())),
		actionButton(ctx, "+1", accentColor, increment.Invoke),
		actionButton(ctx, "Show Value", accentColor, show.Invoke),
		toggleButton(ctx, s.toggle.Value(), s.flip),
	)
}

// actions returns the handles for the current build.
func (s *callbackCardState) actions(ctx core.BuildContext) (show, increment *hooks.Action) {
	count := s.count.Value()
	show = s.show.Bind(count, func() {
		s.notify(ctx, "Current value", fmt.Sprintf("Count: %d", count))
	})
	return show, s.increment
}

func (s *callbackCardState) flip() {
	s.toggle.Set(!s.toggle.Value())
}
