package main

import (
	"fmt"
	"log"

	"github.com/go-drift/drift/pkg/core"

	"github.com/go-drift/hooksdemo/internal/config"
	"github.com/go-drift/hooksdemo/internal/hooks"
)

// MemoCard shows a slow sum that is recomputed only when its input changes.
// Flipping the unrelated toggle rebuilds the card but reuses the result.
type MemoCard struct {
	core.StatefulBase
	Heading    config.CardText
	Initial    int
	Multiplier int64
}

func (c MemoCard) CreateState() core.State {
	return &memoCardState{heading: c.Heading, initial: c.Initial, multiplier: c.multiplier()}
}

func (c MemoCard) multiplier() int64 {
	if c.Multiplier <= 0 {
		return 1_000_000
	}
	return c.Multiplier
}

type memoCardState struct {
	core.StateBase
	heading    config.CardText
	initial    int
	multiplier int64
	number     *core.Managed[int]
	toggle     *core.Managed[bool]
	total      *hooks.Memo[int, int64]
}

func (s *memoCardState) InitState() {
	s.number = core.NewManaged(s, s.initial)
	s.toggle = core.NewManaged(s, false)
	s.total = hooks.NewMemo(func(n int) int64 {
		log.Printf("memo: calculating slow sum for %d", n)
		return slowSum(n, s.multiplier)
	})
}

func (s *memoCardState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if w, ok := s.Element().Widget().(MemoCard); ok {
		s.update(w)
	}
}

// update applies a rebuilt widget. Initial only seeds the first value; a new
// multiplier drops the cached sum.
func (s *memoCardState) update(w MemoCard) {
	s.heading = w.Heading
	if multiplier := w.multiplier(); multiplier != s.multiplier {
		s.multiplier = multiplier
		s.total.Invalidate()
	}
}

func (s *memoCardState) Build(ctx core.BuildContext) core.Widget {
	return card(s.heading,
		bodyText(fmt.Sprintf("Number: %d", s.number.Value())),
		buttonRow(
			actionButton(ctx, "-1", accentColor, s.decrement),
			actionButton(ctx, "+1", accentColor, s.increment),
		),
		bodyText(fmt.Sprintf("Result: %d", s.result())),
		toggleButton(ctx, s.toggle.Value(), s.flip),
	)
}

func (s *memoCardState) result() int64 {
	return s.total.Get(s.number.Value())
}

func (s *memoCardState) increment() {
	s.number.Update(func(n int) int { return n + 1 })
}

func (s *memoCardState) decrement() {
	s.number.Update(func(n int) int { return n - 1 })
}

func (s *memoCardState) flip() {
	s.toggle.Set(!s.toggle.Value())
}

// slowSum adds every integer in [0, n*multiplier) one at a time.
// Non-positive n yields 0.
func slowSum(n int, multiplier int64) int64 {
	limit := int64(n) * multiplier
	var sum int64
	for i := int64(0); i < limit; i++ {
		sum += i
	}
	return sum
}
