// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-combin/pkg/util/math"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [flags] n k(s)",
	Short: "count the k-element subsets of an n-element collection.",
	Long: `Report the number of ways of choosing k of n items, without enumerating
them.  With --all, report the total over every subset size instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("expected n, optionally followed by one or more subset sizes")
			os.Exit(2)
		}
		//
		n := parseUintArg(args[0])
		//
		if GetFlag(cmd, "all") {
			// Counting subsets of every size, i.e. 2^n.
			fmt.Println(math.PowUint64(2, uint64(n)))
			return
		}
		//
		if len(args) < 2 {
			fmt.Println("expected one or more subset sizes (or --all)")
			os.Exit(2)
		}
		//
		for _, k := range parseUintArgs(args[1:]) {
			fmt.Printf("C(%d,%d) = %d\n", n, k, math.Binomial(n, k))
		}
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().Bool("all", false, "count the subsets of every size")
}
