// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp_test

import (
	"testing"

	"code.hybscloud.com/tramp"
)

const benchN = uint64(1000)

// BenchmarkFactorialTrampoline measures the defunctionalized drive loop.
func BenchmarkFactorialTrampoline(b *testing.B) {
	for b.Loop() {
		_ = tramp.Factorial(benchN)
	}
}

// BenchmarkFactorialThunk measures the closure-chain drive loop;
// expect one closure allocation per transition.
func BenchmarkFactorialThunk(b *testing.B) {
	for b.Loop() {
		_ = tramp.FactorialThunk(benchN)
	}
}

// BenchmarkFactorialTail measures accumulator-threaded recursion.
func BenchmarkFactorialTail(b *testing.B) {
	for b.Loop() {
		_ = tramp.FactorialTail(benchN)
	}
}

// BenchmarkFactorialNaive measures naive recursion with pending work.
func BenchmarkFactorialNaive(b *testing.B) {
	for b.Loop() {
		_ = tramp.FactorialNaive(benchN)
	}
}

// BenchmarkFactorialCPS measures continuation-passing style;
// expect one continuation closure per step.
func BenchmarkFactorialCPS(b *testing.B) {
	for b.Loop() {
		_ = tramp.FactorialCPS(benchN)
	}
}

// BenchmarkWalk measures the stepping boundary driven to completion.
func BenchmarkWalk(b *testing.B) {
	initial := tramp.State[uint64]{Remaining: benchN, Acc: 1}
	for b.Loop() {
		v, w := tramp.Walk(initial, tramp.Step[uint64])
		for w != nil {
			v, w = w.Resume()
		}
		_ = v
	}
}
