// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp_test

import (
	"os"
	"os/exec"
	"runtime/debug"
	"strconv"
	"strings"
	"testing"

	"code.hybscloud.com/tramp"
)

func TestFormulationsAgree(t *testing.T) {
	// All five control-flow shapes compute the same wrapped product.
	for n := uint64(0); n <= 25; n++ {
		want := tramp.Factorial(n)
		if got := tramp.FactorialNaive(n); got != want {
			t.Errorf("FactorialNaive(%d) = %v, want %v", n, got, want)
		}
		if got := tramp.FactorialTail(n); got != want {
			t.Errorf("FactorialTail(%d) = %v, want %v", n, got, want)
		}
		if got := tramp.FactorialCPS(n); got != want {
			t.Errorf("FactorialCPS(%d) = %v, want %v", n, got, want)
		}
		if got := tramp.FactorialThunk(n); got != want {
			t.Errorf("FactorialThunk(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestTailLargeInput(t *testing.T) {
	// Go performs no tail-call elimination, but 200000 frames fit the
	// default growable stack comfortably: the call must return, not crash.
	first := tramp.FactorialTail[uint64](200000)
	second := tramp.Factorial[uint64](200000)
	if first != second {
		t.Errorf("tail and trampoline disagree at 200000: %v != %v", first, second)
	}
}

func TestContinuationType(t *testing.T) {
	// Continuation is the package's only continuation shape: one numeric
	// argument in, one numeric result out.
	double := tramp.Continuation[int64](func(v int64) int64 { return v * 2 })
	if got := double(21); got != 42 {
		t.Errorf("double(21) = %v, want 42", got)
	}
}

// crashEnv re-execs the test binary with a constrained stack so the naive
// formulation's exhaustion is reproducible regardless of the platform
// default. The threshold is parameterized, not a portable constant.
const crashEnv = "TRAMP_NAIVE_CRASH_N"

func TestNaiveStackExhaustion(t *testing.T) {
	if v := os.Getenv(crashEnv); v != "" {
		n, _ := strconv.ParseInt(v, 10, 64)
		debug.SetMaxStack(1 << 21)
		tramp.FactorialNaive(n)
		os.Exit(0) // not reached on a 2MiB stack
	}
	if testing.Short() {
		t.Skip("skipping subprocess crash demonstration in short mode")
	}

	// 200000 pending multiplications overflow a 2MiB stack by a wide
	// margin. The expected outcome is abnormal termination, reported by
	// the runtime as a fatal stack-exceeds error.
	cmd := exec.Command(os.Args[0], "-test.run=^TestNaiveStackExhaustion$")
	cmd.Env = append(os.Environ(), crashEnv+"=200000")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("naive recursion survived a constrained stack:\n%s", out)
	}
	if !strings.Contains(string(out), "goroutine stack exceeds") {
		t.Fatalf("unexpected failure mode: %v\n%s", err, out)
	}
}
