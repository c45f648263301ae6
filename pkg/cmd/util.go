package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringSlice gets an expected string array, or panic if an error arises.
func GetStringSlice(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringSlice(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a non-negative integer argument, exiting with an error on malformed
// input.
func parseUintArg(arg string) uint {
	val, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		fmt.Printf("invalid argument %q: expected non-negative integer\n", arg)
		os.Exit(2)
	}

	return uint(val)
}

// Parse one or more non-negative integer arguments.
func parseUintArgs(args []string) []uint {
	vals := make([]uint, len(args))
	//
	for i, arg := range args {
		vals[i] = parseUintArg(arg)
	}
	//
	return vals
}
