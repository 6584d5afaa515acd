package hooks

// Ref holds a value across rebuilds. Unlike core.Managed, writing to a Ref
// never schedules a rebuild.
type Ref[T any] struct {
	current T
}

// NewRef creates a ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{current: initial}
}

// Current returns the held value.
func (r *Ref[T]) Current() T {
	return r.current
}

// Set replaces the held value.
func (r *Ref[T]) Set(value T) {
	r.current = value
}

// Update applies transform and returns the new value.
func (r *Ref[T]) Update(transform func(T) T) T {
	r.current = transform(r.current)
	return r.current
}
