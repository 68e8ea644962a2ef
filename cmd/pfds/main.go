/*
Command pfds demonstrates the persistent data structures of this module with
the examples of chapter 2 of Okasaki's “Purely Functional Data Structures”.

Usage:

    pfds [--trace level] [--layout] [all | concat | update | suffixes | tree | version]

Without a sub-command, all demonstrations are run.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
