package hooks

// Action is a callback handle. Go funcs are not comparable, so handles are
// compared by pointer: two builds received the same callback iff they got the
// same *Action.
type Action struct {
	fn func()
}

// Invoke runs the action. A nil action is a no-op.
func (a *Action) Invoke() {
	if a == nil || a.fn == nil {
		return
	}
	a.fn()
}

// Stable returns an action that is created once and never replaced. Callers
// keep it on their state and hand out the same pointer on every build, so fn
// must not capture values that go stale; read state through Managed.Update
// or Managed.Value at call time instead.
func Stable(fn func()) *Action {
	return &Action{fn: fn}
}

// Callback hands out an Action whose identity changes only when the
// dependency key changes.
type Callback[K comparable] struct {
	deps   K
	action *Action
}

// NewCallback creates an unbound callback.
func NewCallback[K comparable]() *Callback[K] {
	return &Callback[K]{}
}

// Bind returns the cached action if deps equals the key it was bound under.
// Otherwise fn replaces it and a new *Action is returned.
func (c *Callback[K]) Bind(deps K, fn func()) *Action {
	if c.action != nil && c.deps == deps {
		return c.action
	}
	c.deps = deps
	c.action = &Action{fn: fn}
	return c.action
}
