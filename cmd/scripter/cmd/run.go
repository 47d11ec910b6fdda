package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/scripter/internal/command"
	"github.com/msto63/scripter/internal/executor"
	"github.com/msto63/scripter/internal/history"
	"github.com/msto63/scripter/internal/input"
	"github.com/msto63/scripter/internal/parser"
	"github.com/msto63/scripter/internal/tui"
	"github.com/msto63/scripter/internal/tui/countdown"
	"github.com/msto63/scripter/pkg/core/config"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

var (
	dryRun     bool
	countdownD time.Duration
	reportPath string
	noHistory  bool
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Parse a script and play it back",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScript(cmd, args[0])
	},
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print input events instead of injecting them")
	cmd.Flags().DurationVar(&countdownD, "countdown", 0, "wait before playback so the target window can be focused")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a YAML run report to this file")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this run in the history")
}

// loadScript parses the whole script before anything executes
func loadScript(path string) (*parser.Script, error) {
	p := parser.New(parser.Options{Logger: logger})
	script, err := p.ParseFile(path)
	if err != nil {
		var se *parser.SyntaxError
		if errors.As(err, &se) {
			return nil, scerr.Wrap(se, "invalid script").
				WithCode(scerr.CodeScriptSyntax).
				WithDetail("path", path).
				WithDetail("line", se.Line)
		}
		return nil, err
	}
	return script, nil
}

func runScript(cmd *cobra.Command, path string) error {
	script, err := loadScript(path)
	if err != nil {
		return err
	}

	backend := appConfig.Run.Backend
	if dryRun {
		backend = config.BackendDryRun
	}

	wait := appConfig.Run.Countdown.Duration
	if cmd.Flags().Changed("countdown") {
		wait = countdownD
	}
	if backend != config.BackendDryRun && wait > 0 {
		ok, err := countdown.Run(path, wait, cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return scerr.Wrap(err, "countdown failed").WithCode(scerr.CodeInternal)
		}
		if !ok {
			return scerr.New("aborted before playback").WithDetail("path", path)
		}
	}

	engine, err := executor.New(executor.Options{
		Logger: logger,
		Opener: executor.OpenerFunc(func() (command.Handle, error) {
			return input.Open(input.Options{
				Backend: backend,
				Logger:  logger,
				Output:  cmd.OutOrStdout(),
			})
		}),
		DryRun:  backend == config.BackendDryRun,
		Backend: backend,
	})
	if err != nil {
		return err
	}

	result, runErr := engine.Run(script)

	writeReport(result)
	recordHistory(result)

	if runErr != nil {
		return runErr
	}

	fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderOK(fmt.Sprintf("%d statements executed in %s",
		result.Executed(), result.Elapsed().Round(time.Millisecond))))
	return nil
}

func writeReport(result *executor.RunResult) {
	path := reportPath
	if path == "" && appConfig.Run.ReportDir != "" {
		path = executor.ReportPath(appConfig.Run.ReportDir, result)
	}
	if path == "" {
		return
	}

	if err := executor.WriteReport(path, result); err != nil {
		logger.WarnWithErr("Failed to write report", err, sclog.Fields{"path": path})
		return
	}
	logger.Info("Report written", sclog.Fields{"path": path})
}

func recordHistory(result *executor.RunResult) {
	if noHistory || !appConfig.History.HistoryEnabled() {
		return
	}

	store, err := history.Open(history.Config{Path: appConfig.History.Path})
	if err != nil {
		logger.LogError(err)
		return
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Record(ctx, history.FromResult(result)); err != nil {
		logger.LogError(err)
		return
	}
	if pruned, err := store.Prune(ctx, appConfig.History.Keep); err != nil {
		logger.LogError(err)
	} else if pruned > 0 {
		logger.Debug("History pruned", sclog.Fields{"deleted": pruned})
	}
}
