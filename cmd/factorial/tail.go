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

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Tail recursion: accumulator threaded as a parameter",
	Long: `Runs the formulation whose self-call is the final action with no pending
work. A runtime with tail-call elimination executes this in constant stack;
Go does not eliminate tail calls, so depth is still linear here and large
inputs lean on the growable goroutine stack instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt64("n")
		runTail(cmd.OutOrStdout(), n)
	},
}

func init() {
	rootCmd.AddCommand(tailCmd)
	tailCmd.Flags().Int64("n", 200000, "input size")
}

func runTail(w io.Writer, n int64) {
	fmt.Fprintf(w, "Calculating factorial(%d) with a tail-recursive function...\n", n)
	tramp.FactorialTail(n)
	fmt.Fprintln(w, "Success! No stack overflow occurred.")
}
