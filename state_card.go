package main

import (
	"fmt"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/platform"

	"github.com/go-drift/hooksdemo/internal/config"
)

// StateCard demonstrates plain reactive values: a counter and a name field
// whose every keystroke rebuilds the greeting.
type StateCard struct {
	core.StatefulBase
	Heading config.CardText
}

func (c StateCard) CreateState() core.State {
	return &stateCardState{heading: c.Heading}
}

type stateCardState struct {
	core.StateBase
	heading        config.CardText
	counter        *core.Managed[int]
	name           *core.Managed[string]
	nameController *platform.TextEditingController
}

func (s *stateCardState) InitState() {
	s.counter = core.NewManaged(s, 0)
	s.name = core.NewManaged(s, "")
	s.nameController = platform.NewTextEditingController("")
	s.OnDispose(s.nameController.AddListener(s.syncName))
}

func (s *stateCardState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(StateCard); ok {
		s.heading = w.Heading
	}
}

func (s *stateCardState) Build(ctx core.BuildContext) core.Widget {
	children := []core.Widget{
		valueText(fmt.Sprintf("Counter: %d", s.counter.Value())),
		buttonRow(
			actionButton(ctx, "-", accentColor, s.decrement),
			actionButton(ctx, "+", accentColor, s.increment),
		),
		inputField(ctx, s.nameController, "Your name"),
	}
	if greeting := s.greeting(); greeting != "" {
		children = append(children, bodyText(greeting))
	}
	return card(s.heading, children...)
}

func (s *stateCardState) increment() {
	s.counter.Update(func(c int) int { return c + 1 })
}

func (s *stateCardState) decrement() {
	s.counter.Update(func(c int) int { return c - 1 })
}

// syncName copies the controller text into the rebuild-triggering value.
// Selection-only changes also notify, so equal text is ignored.
func (s *stateCardState) syncName() {
	if text := s.nameController.Text(); text != s.name.Value() {
		s.name.Set(text)
	}
}

func (s *stateCardState) greeting() string {
	name := s.name.Value()
	if name == "" {
		return ""
	}
	return "Hi, " + name + "!"
}
