// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Bounce is the result of one trampolined transition: either Done with a
// final value of type A, or Continue with a successor state of type S.
// Exactly one variant is active per value.
//
// Bounce is a plain value struct rather than an interface so that step
// functions can return it without a heap allocation per transition.
type Bounce[S, A any] struct {
	done  bool
	value A
	next  S
}

// Done creates a terminal Bounce carrying the final value.
func Done[S, A any](v A) Bounce[S, A] {
	return Bounce[S, A]{done: true, value: v}
}

// Continue creates a non-terminal Bounce carrying the successor state.
func Continue[S, A any](next S) Bounce[S, A] {
	return Bounce[S, A]{next: next}
}

// IsDone returns true if this is a terminal result.
func (b Bounce[S, A]) IsDone() bool {
	return b.done
}

// Value returns the final value and true, or zero and false.
func (b Bounce[S, A]) Value() (A, bool) {
	if b.done {
		return b.value, true
	}
	var zero A
	return zero, false
}

// Next returns the successor state and true, or zero and false.
func (b Bounce[S, A]) Next() (S, bool) {
	if !b.done {
		return b.next, true
	}
	var zero S
	return zero, false
}

// MatchBounce pattern matches on the Bounce, calling onContinue or onDone.
func MatchBounce[S, A, T any](b Bounce[S, A], onContinue func(S) T, onDone func(A) T) T {
	if b.done {
		return onDone(b.value)
	}
	return onContinue(b.next)
}
