// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tramp provides a stack-safe trampoline evaluator for
// self-recursive, tail-position computations in Go.
//
// A trampolined computation is described by a [StepFunc]: a pure function
// that maps the current state to a [Bounce] — either Done with a final
// value, or Continue with a successor state. The driver [Run] applies the
// step function in an explicit loop until Done, so call depth is O(1)
// regardless of how many logical steps occur. A recursive formulation of
// the same computation has call depth O(steps) and eventually exhausts the
// goroutine stack.
//
// # Core Types
//
//   - [Bounce]: tagged step result — Done(value) or Continue(next state)
//   - [StepFunc]: pure transition function State → Bounce
//   - [Run]: iterative driver, the trampoline itself
//   - [RunWith]: driver variant with a custom final continuation
//
// # Stepping Boundary
//
// [Walk] drives a computation one transition at a time for callers that
// interleave their own work (progress reporting, budgeting) between
// transitions. It returns a [Walker] holding the pending state.
//
// Affine semantics: each [Walker] may be resumed at most once.
//
//   - [Walk]: perform the first transition, complete or suspend
//   - [Walker.State]: the pending state at the suspension point
//   - [Walker.Resume]: advance one transition (panics on reuse)
//   - [Walker.TryResume]: non-panicking variant of Resume
//   - [Walker.Discard]: drop without resuming
//
// # Closure Representation
//
// [Thunk] is the closure-based dual of the defunctionalized Bounce chain:
// a nullary function that yields either the final value or the next thunk.
// [ThunkOf] reifies a step function and initial state into a thunk chain;
// [RunThunk] is its iterative driver.
//
// # Factorial Demonstrations
//
// The package carries a worked accumulation domain contrasting control-flow
// shapes over the same arithmetic. All formulations compute n! modulo the
// bit width of the integer type; overflow wraps silently and is never
// reported — the subject of study is stack behavior, not the product.
//
//   - [State], [Step]: the trampolined formulation's state and transition
//   - [Factorial]: trampoline-driven, O(1) stack
//   - [FactorialThunk]: closure-trampoline formulation, O(1) stack
//   - [FactorialTail]: accumulator-threaded recursion; Go performs no
//     guaranteed tail-call elimination, so depth remains O(n)
//   - [FactorialCPS]: threads a [Continuation]; nests one closure per
//     step, depth O(n) in both calls and captured closures
//   - [FactorialNaive]: pending multiplication after the self-call; the
//     canonical shape that defeats tail-call elimination and exhausts a
//     bounded stack for large n
//
// # Example
//
//	type countdown struct{ n, total int }
//
//	sum := tramp.Run(countdown{n: 10}, func(c countdown) tramp.Bounce[countdown, int] {
//		if c.n == 0 {
//			return tramp.Done[countdown](c.total)
//		}
//		return tramp.Continue[countdown, int](countdown{n: c.n - 1, total: c.total + c.n})
//	})
//	// sum == 55
package tramp
