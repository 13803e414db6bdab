// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// StepFunc computes one transition of a trampolined computation.
// Given the current state it returns either Done with the final value or
// Continue with the successor state.
//
// Step functions must be pure: no side effects, no retained references to
// the state they receive. Termination of [Run] is the step function's
// obligation — some measure of the state must strictly decrease on every
// Continue transition.
type StepFunc[S, A any] func(S) Bounce[S, A]

// Run drives step from initial until it returns Done, then returns the
// final value.
//
// The driver is an explicit loop, not a recursion: call depth is O(1)
// no matter how many transitions occur. Each iteration consumes the
// current state exactly once and replaces it with the successor; no
// history is retained.
func Run[S, A any](initial S, step StepFunc[S, A]) A {
	current := initial
	for {
		b := step(current)
		if b.done {
			return b.value
		}
		current = b.next
	}
}

// RunWith drives step from initial and passes the final value to a custom
// final continuation k.
func RunWith[S, A, R any](initial S, step StepFunc[S, A], k func(A) R) R {
	return k(Run(initial, step))
}
