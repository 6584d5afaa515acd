package hooks

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/focus"
)

// FocusRef is an imperative handle to a focusable subtree. Attach it by
// wrapping the subtree in a [FocusTarget]; the ref is cleared again when the
// target unmounts.
//
// Text inputs register their focus nodes with the root focus scope and report
// their geometry through focus.RectProvider. Focus picks the first registered
// node whose rectangle is centered inside the target's bounds.
type FocusRef struct {
	target *focusTargetState
}

// NewFocusRef creates a detached ref.
func NewFocusRef() *FocusRef {
	return &FocusRef{}
}

// Mounted reports whether a FocusTarget currently holds this ref.
func (r *FocusRef) Mounted() bool {
	return r != nil && r.target != nil
}

// Focus requests primary focus for the input inside the attached target.
// It returns false without side effects when nothing is mounted or no
// focusable node lies inside the target.
func (r *FocusRef) Focus() bool {
	if !r.Mounted() {
		return false
	}
	bounds, ok := r.target.bounds()
	if !ok {
		return false
	}
	node := nodeWithin(focus.GetFocusManager().RootScope, bounds)
	if node == nil {
		return false
	}
	node.RequestFocus()
	return true
}

func (r *FocusRef) detach(s *focusTargetState) {
	if r.target == s {
		r.target = nil
	}
}

func nodeWithin(scope *focus.FocusScopeNode, bounds focus.FocusRect) *focus.FocusNode {
	if scope == nil || !bounds.IsValid() {
		return nil
	}
	for _, node := range scope.Children {
		if node == nil || node.Rect == nil || !node.CanRequestFocus {
			continue
		}
		x, y := node.Rect.FocusRect().Center()
		if x >= bounds.Left && x <= bounds.Right && y >= bounds.Top && y <= bounds.Bottom {
			return node
		}
	}
	return nil
}

// FocusTarget attaches Ref to Child for as long as it is mounted.
type FocusTarget struct {
	core.StatefulBase

	Ref   *FocusRef
	Child core.Widget
}

func (FocusTarget) CreateState() core.State {
	return &focusTargetState{}
}

type focusTargetState struct {
	core.StateBase
	ref *FocusRef
}

func (s *focusTargetState) InitState() {
	s.attach(s.widget().Ref)
}

func (s *focusTargetState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.attach(s.widget().Ref)
}

func (s *focusTargetState) Dispose() {
	if s.ref != nil {
		s.ref.detach(s)
		s.ref = nil
	}
	s.StateBase.Dispose()
}

func (s *focusTargetState) Build(ctx core.BuildContext) core.Widget {
	return s.widget().Child
}

func (s *focusTargetState) widget() FocusTarget {
	w, _ := s.Element().Widget().(FocusTarget)
	return w
}

func (s *focusTargetState) attach(ref *FocusRef) {
	if ref == s.ref {
		return
	}
	if s.ref != nil {
		s.ref.detach(s)
	}
	s.ref = ref
	if ref != nil {
		ref.target = s
	}
}

// bounds returns the global rectangle of the target's render object.
func (s *focusTargetState) bounds() (focus.FocusRect, bool) {
	element := s.Element()
	if element == nil || s.IsDisposed() {
		return focus.FocusRect{}, false
	}
	ro := element.RenderObject()
	if ro == nil {
		return focus.FocusRect{}, false
	}
	offset := core.GlobalOffsetOf(element)
	size := ro.Size()
	return focus.FocusRect{
		Left:   offset.X,
		Top:    offset.Y,
		Right:  offset.X + size.Width,
		Bottom: offset.Y + size.Height,
	}, true
}
