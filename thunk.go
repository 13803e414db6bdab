// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Thunk is the closure-based representation of a trampolined computation:
// a nullary function that yields either the final value (with nil
// successor) or the next thunk.
//
// The two representations are duals. A [StepFunc] over an explicit state
// type is the defunctionalized form; a Thunk chain captures the same
// transitions as closures. Thunks trade one closure allocation per
// transition for not having to name a state type.
type Thunk[A any] func() (A, Thunk[A])

// RunThunk forces t repeatedly until it stops producing a successor,
// then returns the final value. Like [Run], the driver is an explicit
// loop with O(1) call depth.
func RunThunk[A any](t Thunk[A]) A {
	for {
		v, next := t()
		if next == nil {
			return v
		}
		t = next
	}
}

// ThunkOf reifies a step function and initial state into a thunk chain.
// Forcing the resulting thunk performs exactly one transition; the
// successor thunk captures the successor state.
func ThunkOf[S, A any](initial S, step StepFunc[S, A]) Thunk[A] {
	return func() (A, Thunk[A]) {
		b := step(initial)
		if b.done {
			return b.value, nil
		}
		var zero A
		return zero, ThunkOf(b.next, step)
	}
}
