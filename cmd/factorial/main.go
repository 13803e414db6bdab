// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "factorial",
	Short: "Contrast call-stack behavior across factorial formulations",
	Long: `Computes an accumulated product over a descending integer sequence with one
of four control-flow shapes - naive recursion, tail recursion,
continuation-passing style, or an explicit trampoline - and reports whether
the process survived.

The numeric result wraps around for large inputs and is intentionally not
validated; the subject of the demonstration is stack usage, not arithmetic.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
