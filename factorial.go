// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import "golang.org/x/exp/constraints"

// Factorial accumulation over a descending integer sequence.
// The product exceeds the representable range for all interesting inputs
// and wraps silently in every formulation; the demonstrations study stack
// behavior, not the numeric result.

// State is the accumulation state of the trampolined factorial:
// the remaining count and the running product. States are immutable
// values; Step produces a fresh successor each transition.
//
// Invariant: Remaining strictly decreases on every Continue transition,
// which is what guarantees [Run] terminates.
type State[T constraints.Integer] struct {
	Remaining T
	Acc       T
}

// Step computes one factorial transition: Done with the accumulator once
// Remaining reaches 1 or below, otherwise Continue with the count
// decremented and the accumulator multiplied.
//
// Pure: no side effects, no error paths. Overflow wraps.
func Step[T constraints.Integer](s State[T]) Bounce[State[T], T] {
	if s.Remaining <= 1 {
		return Done[State[T]](s.Acc)
	}
	return Continue[State[T], T](State[T]{
		Remaining: s.Remaining - 1,
		Acc:       s.Acc * s.Remaining,
	})
}

// Factorial computes n! modulo the bit width of T using the trampoline
// driver. Call depth is O(1) regardless of n; Factorial(200000) returns
// normally where the recursive formulations grow 200000 frames.
//
// Factorial(0) == Factorial(1) == 1.
func Factorial[T constraints.Integer](n T) T {
	return Run(State[T]{Remaining: n, Acc: 1}, Step[T])
}

// FactorialThunk computes n! via the closure-trampoline representation.
// Same O(1) call depth as [Factorial]; allocates one closure per
// transition instead of threading an explicit state value.
func FactorialThunk[T constraints.Integer](n T) T {
	return RunThunk(ThunkOf(State[T]{Remaining: n, Acc: 1}, Step[T]))
}
