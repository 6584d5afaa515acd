package hooks

// Memo caches the result of an expensive function under the key it was
// computed for. Get recomputes only when called with a key that differs
// from the cached one.
//
// Example:
//
//	func (s *myState) InitState() {
//	    s.total = hooks.NewMemo(func(n int) int64 { return slowSum(n) })
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    total := s.total.Get(s.input.Value())
//	    ...
//	}
type Memo[K comparable, V any] struct {
	compute      func(K) V
	key          K
	value        V
	valid        bool
	computations int
}

// NewMemo creates an empty memo around compute.
func NewMemo[K comparable, V any](compute func(K) V) *Memo[K, V] {
	return &Memo[K, V]{compute: compute}
}

// Get returns the value for key, computing it if the cache is empty or
// holds a different key.
func (m *Memo[K, V]) Get(key K) V {
	if !m.valid || m.key != key {
		m.value = m.compute(key)
		m.key = key
		m.valid = true
		m.computations++
	}
	return m.value
}

// Computations returns how many times compute has run.
func (m *Memo[K, V]) Computations() int {
	return m.computations
}

// Invalidate drops the cached value so the next Get recomputes.
func (m *Memo[K, V]) Invalidate() {
	var zero V
	m.value = zero
	m.valid = false
}
