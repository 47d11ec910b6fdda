package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/scripter/internal/executor"
	"github.com/msto63/scripter/internal/history"
	"github.com/msto63/scripter/internal/tui"
)

var (
	historyLimit  int
	historyFailed bool
	historyScript string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(history.Config{Path: appConfig.History.Path})
		if err != nil {
			return err
		}
		defer store.Close()

		filter := history.Filter{Script: historyScript, Limit: historyLimit}
		if historyFailed {
			filter.Status = executor.StatusFailed
		}

		runs, err := store.List(context.Background(), filter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, tui.RenderHelp("no runs recorded"))
			return nil
		}

		fmt.Fprintln(out, tui.RenderTitle("Recent runs"))
		for _, run := range runs {
			fmt.Fprintf(out, "%s  %s  %-9s %3d/%-3d %8s  %s\n",
				shortRunID(run.ID),
				run.StartedAt.Local().Format("2006-01-02 15:04:05"),
				tui.RenderStatus(run.Status, run.Status == executor.StatusCompleted),
				run.Executed, run.Statements,
				run.Elapsed().Round(time.Millisecond),
				run.Script)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(history.Config{Path: appConfig.History.Path})
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Run:        %s\n", run.ID)
		fmt.Fprintf(out, "Script:     %s\n", run.Script)
		fmt.Fprintf(out, "Backend:    %s\n", run.Backend)
		fmt.Fprintf(out, "Started:    %s\n", run.StartedAt.Local().Format(time.RFC3339))
		fmt.Fprintf(out, "Elapsed:    %s\n", run.Elapsed())
		fmt.Fprintf(out, "Status:     %s\n", tui.RenderStatus(run.Status, run.Status == executor.StatusCompleted))
		fmt.Fprintf(out, "Statements: %d/%d\n", run.Executed, run.Statements)
		if run.FailedLine > 0 {
			fmt.Fprintf(out, "Failed at:  line %d\n", run.FailedLine)
		}
		if run.Error != "" {
			fmt.Fprintf(out, "Error:      %s\n", run.Error)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "only show failed runs")
	historyCmd.Flags().StringVar(&historyScript, "script", "", "only show runs of this script")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
