package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/msto63/scripter/internal/history"
	"github.com/msto63/scripter/internal/input"
	"github.com/msto63/scripter/internal/tui"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	"github.com/msto63/scripter/pkg/core/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, input backend and history database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := newDoctorRegistry().Check(context.Background())

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, tui.RenderTitle("scripter doctor"))
		for _, c := range report.Checks {
			fmt.Fprintf(out, "  %-10s %s  %s\n",
				c.Name,
				tui.RenderStatus(string(c.Status), c.Status != health.StatusUnhealthy),
				tui.RenderHelp(c.Message))
		}

		if report.Status == health.StatusUnhealthy {
			return scerr.New("environment check failed").WithDetail("status", string(report.Status))
		}
		return nil
	},
}

func newDoctorRegistry() *health.Registry {
	r := health.NewRegistry()

	r.RegisterFunc("config", func(ctx context.Context) health.CheckResult {
		if appConfig.Source == "" {
			return health.Healthy("defaults")
		}
		return health.Healthy(appConfig.Source)
	})

	r.RegisterFunc("backend", func(ctx context.Context) health.CheckResult {
		handle, err := input.Open(input.Options{Backend: appConfig.Run.Backend, Logger: logger})
		if err != nil {
			return health.Unhealthy(err)
		}
		handle.Close()
		return health.Healthy(appConfig.Run.Backend)
	})

	r.RegisterFunc("history", func(ctx context.Context) health.CheckResult {
		if !appConfig.History.HistoryEnabled() {
			return health.Degraded("disabled")
		}
		store, err := history.Open(history.Config{Path: appConfig.History.Path})
		if err != nil {
			return health.Unhealthy(err)
		}
		defer store.Close()
		if _, err := store.List(ctx, history.Filter{Limit: 1}); err != nil {
			return health.Unhealthy(err)
		}
		return health.Healthy(filepath.Clean(appConfig.History.Path))
	})

	if appConfig.Run.ReportDir != "" {
		r.Register(health.WritableDirCheck("reports", appConfig.Run.ReportDir))
	}

	return r
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
