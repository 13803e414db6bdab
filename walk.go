// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import "sync/atomic"

// Stepping boundary for callers that drive a computation one transition
// at a time. Walk/Walker provide shallow evaluation, unlike Run which
// loops to completion.

// Walker represents a trampolined computation suspended between two
// transitions. It holds the pending state and the step function.
//
// Walker enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a walker.
type Walker[S, A any] struct {
	used  atomic.Uintptr
	state S
	step  StepFunc[S, A]
}

// State returns the pending state at the suspension point.
func (w *Walker[S, A]) State() S { return w.state }

// Resume performs the next transition.
// Returns either a completed value (with nil walker) or the next walker.
// Panics if the walker has already been resumed or discarded.
//
// When the computation continues, the returned walker reuses the
// receiver's memory, avoiding one allocation per transition.
func (w *Walker[S, A]) Resume() (A, *Walker[S, A]) {
	if w.used.Add(1) != 1 {
		panic("tramp: walker resumed twice")
	}
	b := w.step(w.state)
	if b.done {
		return b.value, nil
	}
	w.used.Store(0)
	w.state = b.next
	var zero A
	return zero, w
}

// TryResume attempts to perform the next transition.
// Returns (value, walker, true) on success, or (zero, nil, false) if the
// walker has already been used.
func (w *Walker[S, A]) TryResume() (A, *Walker[S, A], bool) {
	if w.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	b := w.step(w.state)
	if b.done {
		return b.value, nil, true
	}
	w.used.Store(0)
	w.state = b.next
	var zero A
	return zero, w, true
}

// Discard marks the walker as consumed without resuming.
func (w *Walker[S, A]) Discard() {
	w.used.Store(1)
}

// Walk performs the first transition of a trampolined computation.
// Returns (value, nil) if the computation completed, or (zero, walker)
// if further transitions remain.
//
// Example:
//
//	result, w := Walk(initial, step)
//	for w != nil {
//	    observe(w.State())
//	    result, w = w.Resume()
//	}
func Walk[S, A any](initial S, step StepFunc[S, A]) (A, *Walker[S, A]) {
	b := step(initial)
	if b.done {
		return b.value, nil
	}
	var zero A
	return zero, &Walker[S, A]{state: b.next, step: step}
}
