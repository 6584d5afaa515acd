package main

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"

	"github.com/go-drift/hooksdemo/internal/config"
	"github.com/go-drift/hooksdemo/internal/hooks"
)

// RefCard pairs an imperative focus handle with a click tally that is
// stored without triggering rebuilds.
type RefCard struct {
	core.StatefulBase
	Heading config.CardText

	notify notifyFunc
}

func (c RefCard) CreateState() core.State {
	notify := c.notify
	if notify == nil {
		notify = showAlert
	}
	return &refCardState{heading: c.Heading, notify: notify}
}

type refCardState struct {
	core.StateBase
	heading        config.CardText
	notify         notifyFunc
	text           *core.Managed[string]
	textController *platform.TextEditingController
	input          *hooks.FocusRef
	clicks         *hooks.Ref[int]
}

func (s *refCardState) InitState() {
	s.text = core.NewManaged(s, "")
	s.textController = platform.NewTextEditingController("")
	s.OnDispose(s.textController.AddListener(s.syncText))
	s.input = hooks.NewFocusRef()
	s.clicks = hooks.NewRef(0)
}

func (s *refCardState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(RefCard); ok {
		s.heading = w.Heading
	}
}

func (s *refCardState) Build(ctx core.BuildContext) core.Widget {
	children := []core.Widget{
		hooks.FocusTarget{
			Ref:   s.input,
			Child: inputField(ctx, s.textController, "Type something"),
		},
		buttonRow(
			actionButton(ctx, "Focus Input", accentColor, s.focusInput),
			actionButton(ctx, "Count Click", accentColor, func() {
				s.countClick(ctx)
			}),
		),
	}
	if echo := s.echo(); echo != "" {
		children = append(children, bodyText(echo))
	}
	return card(s.heading, children...)
}

func (s *refCardState) syncText() {
	if text := s.textController.Text(); text != s.text.Value() {
		s.text.Set(text)
	}
}

func (s *refCardState) focusInput() {
	s.input.Focus()
}

// countClick bumps the tally and reports it. The tally lives in a Ref, so
// the card itself does not rebuild.
func (s *refCardState) countClick(ctx core.BuildContext) {
	n := s.clicks.Update(func(c int) int { return c + 1 })
	s.notify(ctx, "Clicks", fmt.Sprintf("You clicked %d times!", n))
}

func (s *refCardState) echo() string {
	text := s.text.Value()
	if text == "" {
		return ""
	}
	return "You typed: " + text
}
