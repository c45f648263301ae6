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
	"strings"

	"github.com/consensys/go-combin/pkg/util"
	"github.com/consensys/go-combin/pkg/util/collection/enum"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate [flags] n k(s)",
	Short: "enumerate the k-element subsets of an n-element collection.",
	Long: `Enumerate every way of choosing k of n items, reported as strictly increasing
offset tuples in lexicographic order.  Several subset sizes may be given, in
which case their sequences are enumerated one after the other.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		items := GetStringSlice(cmd, "items")
		sample := GetUint(cmd, "sample")
		stats := util.NewPerfStats()
		//
		if len(items) != 0 {
			// Universe given by the item list, hence all arguments are sizes.
			if len(args) == 0 {
				fmt.Println("expected one or more subset sizes")
				os.Exit(2)
			}
			//
			enumerator := chooseAll(items, parseUintArgs(args))
			log.Debugf("enumerating %d subsets of %d items", enumerator.Count(), len(items))
			//
			if sample != 0 {
				enumerator = enum.Sample(sample, enumerator)
			}
			//
			printSubsets(enumerator, formatItems)
		} else {
			if len(args) < 2 {
				fmt.Println("expected n followed by one or more subset sizes")
				os.Exit(2)
			}
			//
			n := parseUintArg(args[0])
			enumerator := combineAll(n, parseUintArgs(args[1:]))
			log.Debugf("enumerating %d subsets of %d elements", enumerator.Count(), n)
			//
			if sample != 0 {
				enumerator = enum.Sample(sample, enumerator)
			}
			//
			printSubsets(enumerator, formatOffsets)
		}
		//
		stats.Log("enumeration")
	},
}

// Construct the enumerator of offset tuples for each given subset size, in
// the order given.
func combineAll(n uint, sizes []uint) enum.Enumerator[[]uint] {
	enums := make([]enum.Enumerator[[]uint], len(sizes))
	//
	for i, k := range sizes {
		enums[i] = enum.Combinations(n, k)
	}
	//
	return enum.Append(enums...)
}

// Construct the enumerator of chosen items for each given subset size, in the
// order given.
func chooseAll(items []string, sizes []uint) enum.Enumerator[[]string] {
	enums := make([]enum.Enumerator[[]string], len(sizes))
	//
	for i, k := range sizes {
		enums[i] = enum.Choose(k, items)
	}
	//
	return enum.Append(enums...)
}

// Print each subset produced by a given enumerator, packing subsets into
// columns when writing to a terminal.
func printSubsets[T any](enumerator enum.Enumerator[T], format func(T) string) {
	var (
		rows  []string
		width = 1
	)
	//
	for enumerator.HasNext() {
		row := format(enumerator.Next())
		width = max(width, len(row))
		rows = append(rows, row)
	}
	// Determine how many columns fit (one when not a terminal).
	ncols := 1
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		ncols = max(1, w/(width+2))
	}
	//
	for i, row := range rows {
		if (i+1)%ncols == 0 || i+1 == len(rows) {
			fmt.Println(row)
		} else {
			fmt.Printf("%-*s  ", width, row)
		}
	}
}

func formatOffsets(offsets []uint) string {
	return fmt.Sprintf("%v", offsets)
}

func formatItems(items []string) string {
	return fmt.Sprintf("{%s}", strings.Join(items, ","))
}

func init() {
	rootCmd.AddCommand(enumerateCmd)
	enumerateCmd.Flags().StringSlice("items", nil, "choose from the given items, with n taken from their number")
	enumerateCmd.Flags().Uint("sample", 0, "print a uniform sample of the given size, rather than every subset")
}
