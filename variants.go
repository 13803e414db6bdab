// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

import "golang.org/x/exp/constraints"

// Reference formulations of the same accumulation, kept as comparison
// baselines for the trampoline. Each carries a different control-flow
// shape; all agree with [Factorial] modulo wraparound.

// Continuation is a single-argument numeric continuation: it receives the
// result of a subcomputation and performs the rest of the computation.
type Continuation[T constraints.Integer] func(T) T

// identity is the identity continuation that seeds [FactorialCPS].
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func identity[T constraints.Integer](v T) T { return v }

// FactorialNaive computes n! by naive recursion.
//
// The multiplication n * FactorialNaive(n-1) happens after the self-call
// returns. That pending work is what defeats tail-call elimination: every
// call holds a live frame, depth is O(n), and a large enough n exhausts
// the goroutine stack. The abnormal termination is the intended
// demonstration outcome, not a defect.
func FactorialNaive[T constraints.Integer](n T) T {
	if n <= 1 {
		return 1
	}
	return n * FactorialNaive(n-1)
}

// FactorialTail computes n! by accumulator-threaded recursion.
//
// The self-call in factorialAcc is the final action with no pending work,
// so a runtime with tail-call elimination could execute it in O(1) stack.
// Go guarantees no such elimination: depth remains O(n) here, bounded in
// practice only by the growable goroutine stack.
func FactorialTail[T constraints.Integer](n T) T {
	return factorialAcc(n, 1)
}

func factorialAcc[T constraints.Integer](n, acc T) T {
	if n <= 1 {
		return acc
	}
	return factorialAcc(n-1, acc*n)
}

// FactorialCPS computes n! in continuation-passing style, seeded with the
// identity continuation.
//
// Each step wraps the outer continuation in a new closure capturing the
// current multiplier, so the continuation chain reifies what the naive
// formulation keeps on the call stack: depth is O(n) in closures as well
// as calls. Where deep nesting must be bounded, prefer the explicit
// trampoline ([Step] + [Run]).
func FactorialCPS[T constraints.Integer](n T) T {
	return factorialCPS(n, identity[T])
}

func factorialCPS[T constraints.Integer](n T, k Continuation[T]) T {
	if n <= 1 {
		return k(1)
	}
	return factorialCPS(n-1, func(sub T) T {
		return k(n * sub)
	})
}
