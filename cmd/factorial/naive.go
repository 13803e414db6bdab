// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"code.hybscloud.com/tramp"
	"github.com/spf13/cobra"
)

var naiveCmd = &cobra.Command{
	Use:   "naive",
	Short: "Naive recursion: a pending multiplication on every frame",
	Long: `Runs the formulation whose multiplication happens after the self-call
returns. Every call holds a live frame, so a large enough input exhausts the
stack and the runtime kills the process. That abnormal termination is the
demonstration, not a bug.

Go goroutine stacks grow on demand (up to 1 GiB by default on 64-bit), so
the default input survives on an unconstrained stack. Pass --max-stack to
cap the stack and make the crash reproducible, e.g.:

  factorial naive --max-stack 2097152`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt64("n")
		maxStack, _ := cmd.Flags().GetInt("max-stack")
		runNaive(cmd.OutOrStdout(), n, maxStack)
	},
}

func init() {
	rootCmd.AddCommand(naiveCmd)
	naiveCmd.Flags().Int64("n", 200000, "input size")
	naiveCmd.Flags().Int("max-stack", 0, "cap the goroutine stack at this many bytes before running (0 keeps the runtime default)")
}

func runNaive(w io.Writer, n int64, maxStack int) {
	if maxStack > 0 {
		debug.SetMaxStack(maxStack)
		fmt.Fprintf(w, "Stack capped at %d bytes.\n", maxStack)
	}
	fmt.Fprintf(w, "Attempting to calculate factorial(%d) with standard recursion...\n", n)

	// The result is wrapped garbage at this size and deliberately unused;
	// the only question is whether the process survives.
	tramp.FactorialNaive(n)

	fmt.Fprintln(w, "Success! The stack had room for every pending multiplication.")
}
