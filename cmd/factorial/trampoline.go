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

var trampolineCmd = &cobra.Command{
	Use:   "trampoline",
	Short: "Explicit trampoline: O(1) call depth at any input size",
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt64("n")
		every, _ := cmd.Flags().GetInt64("progress-every")
		runTrampoline(cmd.OutOrStdout(), n, every)
	},
}

func init() {
	rootCmd.AddCommand(trampolineCmd)
	trampolineCmd.Flags().Int64("n", 200000, "input size")
	trampolineCmd.Flags().Int64("progress-every", 50000, "report progress every this many transitions (0 disables)")
}

func runTrampoline(w io.Writer, n, every int64) {
	fmt.Fprintf(w, "Calculating factorial(%d) with a manual trampoline...\n", n)

	// Driven through the stepping boundary so progress can be reported
	// between transitions; Run would loop to completion silently.
	v, walker := tramp.Walk(tramp.State[int64]{Remaining: n, Acc: 1}, tramp.Step[int64])
	steps := int64(1)
	for walker != nil {
		if every > 0 && steps%every == 0 {
			fmt.Fprintf(w, "  %d transitions, remaining=%d\n", steps, walker.State().Remaining)
		}
		v, walker = walker.Resume()
		steps++
	}

	fmt.Fprintf(w, "Success! No stack overflow occurred. Wrapped result %d after %d step evaluations.\n", v, steps)
}
