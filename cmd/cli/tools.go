package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"devflow/internal/agent"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the action catalog and which actions have argument rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		return printTools(cmd.OutOrStdout(), app.Catalog, app.Validator.Covers())
	},
}

func printTools(w io.Writer, reg *agent.Catalog, validated []string) error {
	rules := make(map[string]bool, len(validated))
	for _, name := range validated {
		rules[name] = true
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tVALIDATED\tDESCRIPTION")
	for _, t := range reg.Tools() {
		mark := "-"
		if rules[t.Name()] {
			mark = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name(), mark, t.Description())
	}
	return tw.Flush()
}
