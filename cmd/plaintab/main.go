// Package main provides the plaintab CLI: view, convert and summarize
// comma-delimited text files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klemenp/plaintab/core"
	"github.com/klemenp/plaintab/core/format"
	"github.com/klemenp/plaintab/output"
	"github.com/klemenp/plaintab/stats"
)

var (
	viewFormat    string
	viewLimit     int
	convertOut    string
	convertFormat string
	statsColumn   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plaintab",
		Short: "Inspect and convert comma-delimited text files",
		Long: `plaintab loads a comma-delimited text file into an in-memory table
and renders, converts or summarizes it.

The format is plain: fields are split on a literal comma with no quoting or
escaping support.`,
		SilenceUsage: true,
	}

	viewCmd := &cobra.Command{
		Use:   "view [input file]",
		Short: "Render a delimited file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}
	viewCmd.Flags().StringVarP(&viewFormat, "format", "f", "grid", "Rendering: grid, text, json or border")
	viewCmd.Flags().IntVarP(&viewLimit, "limit", "n", 0, "Render at most N rows (0 = all)")

	convertCmd := &cobra.Command{
		Use:   "convert [input file]",
		Short: "Convert a delimited file to another rendition",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "Output file path (required)")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "json", "Output format: text, json, grid or xlsx")
	_ = convertCmd.MarkFlagRequired("output")

	statsCmd := &cobra.Command{
		Use:   "stats [input file]",
		Short: "Summarize a numeric column",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().StringVarP(&statsColumn, "column", "c", "", "Column to summarize (required)")
	_ = statsCmd.MarkFlagRequired("column")

	rootCmd.AddCommand(viewCmd, convertCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runView(cmd *cobra.Command, args []string) error {
	table, err := core.ParseFile(args[0])
	if err != nil {
		return err
	}

	if viewLimit > 0 {
		for table.Len() > viewLimit {
			table.PopRow()
		}
	}

	if viewFormat == "border" {
		fmt.Fprint(cmd.OutOrStdout(), table.String())
		return nil
	}

	f, err := format.Lookup(viewFormat)
	if err != nil {
		return err
	}

	return f.Format(table, cmd.OutOrStdout())
}

func runConvert(cmd *cobra.Command, args []string) error {
	table, err := core.ParseFile(args[0])
	if err != nil {
		return err
	}

	f, err := format.Lookup(convertFormat)
	if err != nil {
		return err
	}

	sink := output.NewFile(convertOut, f, output.NewStdLogger(nil))
	return sink.Write(table)
}

func runStats(cmd *cobra.Command, args []string) error {
	table, err := core.ParseFile(args[0])
	if err != nil {
		return err
	}

	summary, err := stats.Describe(table, statsColumn)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "column: %s\n", summary.Column)
	fmt.Fprintf(out, "count:  %d (skipped %d non-numeric)\n", summary.Count, summary.Skipped)
	fmt.Fprintf(out, "min:    %g\n", summary.Min)
	fmt.Fprintf(out, "max:    %g\n", summary.Max)
	fmt.Fprintf(out, "mean:   %g\n", summary.Mean)
	fmt.Fprintf(out, "median: %g\n", summary.Median)
	fmt.Fprintf(out, "stddev: %g\n", summary.StdDev)
	return nil
}
