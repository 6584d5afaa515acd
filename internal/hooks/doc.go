// Package hooks extends Drift's core hooks with the memoization and
// reference primitives the demo cards need.
//
// Drift already provides [core.Managed] for values that rebuild on change and
// [core.UseController] for resources released with their state. This package
// adds the remaining pieces:
//
//   - [Memo] caches a derived value under an invalidation key.
//   - [Callback] and [Stable] produce [Action] handles whose identity is bound
//     to a dependency key.
//   - [Ref] holds a value that survives rebuilds without triggering them.
//   - [Effect] runs setup when its dependencies change and tears the previous
//     run down first.
//   - [Interval] fires a callback once per period from the frame loop.
//   - [FocusRef] and [FocusTarget] give an imperative focus handle for a text
//     field subtree.
//
// Everything here follows the same threading rule as Managed: use it from the
// UI thread only.
//
// A timer card, for example, keeps its tick source behind an Effect:
//
//	func (s *timerState) InitState() {
//	    s.running = core.NewManaged(s, false)
//	    s.ticking = hooks.UseEffect[bool](s)
//	}
//
//	func (s *timerState) toggle() {
//	    s.running.Set(!s.running.Value())
//	    s.ticking.Sync(s.running.Value(), func() func() {
//	        if !s.running.Value() {
//	            return nil
//	        }
//	        iv := hooks.NewInterval(time.Second, s.tick)
//	        iv.Start()
//	        return iv.Dispose
//	    })
//	}
package hooks
