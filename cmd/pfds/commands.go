package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// Version information - can be set at build time
var Version = "dev"

// tracingKeys lists the trace keys of the packages exercised by the demos.
var tracingKeys = []string{"fp.list", "fp.bst"}

type options struct {
	traceLevel string
	layout     bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "pfds",
		Short: "Demonstrate persistent lists and search trees",
		Long: `pfds runs the examples of chapter 2 of Okasaki's
“Purely Functional Data Structures” and prints the data structures
before and after each operation.

Lists are printed as (x :: xs) with Nil for the empty list,
trees as (left, value, right) with E for the empty tree.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureTracing(opts.traceLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(out, opts)
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.traceLevel, "trace", "error",
		"trace level for the data structure packages (error|info|debug)")
	root.PersistentFlags().BoolVar(&opts.layout, "layout", false,
		"additionally draw trees top-down")

	root.AddCommand(
		demoCmd("all", "Run all demonstrations", out, func(w io.Writer) error {
			return runAll(w, opts)
		}),
		demoCmd("concat", "Figure 2.5: concatenate two lists", out, showListConcat),
		demoCmd("update", "Figure 2.6: update an element of a list", out, showListUpdate),
		demoCmd("suffixes", "Exercise 2.1: all suffixes of a list", out, showListSuffixes),
		demoCmd("tree", "Figure 2.8: insert into a search tree", out, func(w io.Writer) error {
			return showTreeInsert(w, opts.layout)
		}),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version of pfds",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(out, "pfds version %s\n", Version)
			},
		},
	)
	return root
}

func demoCmd(name, short string, out io.Writer, demo func(io.Writer) error) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo(out)
		},
	}
}

func runAll(w io.Writer, opts *options) error {
	demos := []func(io.Writer) error{
		showListConcat,
		showListUpdate,
		showListSuffixes,
		func(w io.Writer) error { return showTreeInsert(w, opts.layout) },
	}
	for _, demo := range demos {
		fmt.Fprintln(w)
		if err := demo(w); err != nil {
			return err
		}
	}
	return nil
}

func configureTracing(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}
