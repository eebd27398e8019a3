package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"devflow/internal/workload"
)

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Print today's summary and workload report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := loadApp(ctx)
		if err != nil {
			return err
		}
		defer app.Close()

		col := app.Workload.Collect(ctx)
		printWorkload(cmd.OutOrStdout(), app.Workload.Summarize(col), app.Workload.Analyze(col))
		return nil
	},
}

func printWorkload(w io.Writer, summary workload.DailySummary, analysis workload.Analysis) {
	fmt.Fprintln(w, summary.Summary)
	fmt.Fprint(w, analysis.Report)

	if len(analysis.SourceErrors) == 0 {
		return
	}
	sources := make([]string, 0, len(analysis.SourceErrors))
	for s := range analysis.SourceErrors {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	fmt.Fprintln(w, "\nUnavailable sources:")
	for _, s := range sources {
		fmt.Fprintf(w, "- %s: %s\n", s, analysis.SourceErrors[s])
	}
}
