package hooks

// Effect runs a setup function whenever its dependency key changes. The
// cleanup returned by the previous setup always runs before the next setup,
// and once more when the owning state is disposed.
type Effect[K comparable] struct {
	deps     K
	ran      bool
	disposed bool
	cleanup  func()
}

// disposer is satisfied by any state embedding core.StateBase.
type disposer interface {
	OnDispose(cleanup func()) func()
}

// UseEffect creates an effect tied to the state s. Its last cleanup runs when
// s is disposed, after which Sync does nothing.
func UseEffect[K comparable](s disposer) *Effect[K] {
	e := &Effect[K]{}
	s.OnDispose(e.dispose)
	return e
}

// Sync runs setup if deps differ from the key of the last run, or if the
// effect has never run. setup may return nil when there is nothing to clean
// up. Sync reports whether setup ran.
func (e *Effect[K]) Sync(deps K, setup func() func()) bool {
	if e.disposed {
		return false
	}
	if e.ran && e.deps == deps {
		return false
	}
	e.release()
	e.deps = deps
	e.ran = true
	e.cleanup = setup()
	return true
}

func (e *Effect[K]) release() {
	if e.cleanup == nil {
		return
	}
	cleanup := e.cleanup
	e.cleanup = nil
	cleanup()
}

func (e *Effect[K]) dispose() {
	e.release()
	e.disposed = true
}
