// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"code.hybscloud.com/tramp"
	"github.com/spf13/cobra"
)

var cpsCmd = &cobra.Command{
	Use:   "cps",
	Short: "Continuation-passing style: the rest of the computation as a value",
	Long: `Runs the formulation that threads a single-argument numeric continuation
instead of an accumulator. Each step wraps the outer continuation in a new
closure capturing the current multiplier, so the continuation chain grows at
the same rate a recursive call stack would.

The default input is small so the per-step trace stays readable; pass
--trace=false for large inputs.`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt64("n")
		trace, _ := cmd.Flags().GetBool("trace")
		runCPS(cmd.OutOrStdout(), n, trace)
	},
}

func init() {
	rootCmd.AddCommand(cpsCmd)
	cpsCmd.Flags().Int64("n", 5, "input size")
	cpsCmd.Flags().Bool("trace", true, "print every continuation construction and invocation")
}

func runCPS(w io.Writer, n int64, trace bool) {
	fmt.Fprintf(w, "Calculating factorial(%d) with continuation-passing style...\n\n", n)

	var v int64
	if trace {
		v = tracedCPS(w, n, func(final int64) int64 { return final })
	} else {
		v = tramp.FactorialCPS(n)
	}

	fmt.Fprintf(w, "\nFinal Value: %d\n", v)
}

// tracedCPS mirrors tramp.FactorialCPS with a narration of every
// continuation it builds and invokes.
func tracedCPS(w io.Writer, n int64, k tramp.Continuation[int64]) int64 {
	fmt.Fprintf(w, "Entering factorial(n=%d)\n", n)
	if n <= 1 {
		fmt.Fprintln(w, "  Base case. Calling continuation k(1)")
		return k(1)
	}
	return tracedCPS(w, n-1, func(sub int64) int64 {
		fmt.Fprintf(w, "  Continuation for n=%d received sub=%d. Calling outer k(%d * %d)\n", n, sub, n, sub)
		return k(n * sub)
	})
}
