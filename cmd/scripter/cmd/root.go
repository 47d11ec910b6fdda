package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/scripter/internal/tui"
	"github.com/msto63/scripter/pkg/core/config"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
	"github.com/msto63/scripter/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logger    *sclog.Logger
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "scripter <script>",
	Short: "scripter - plays keyboard and mouse scripts",
	Long: `scripter reads a script of input commands and plays them back
against the desktop, one line at a time, in file order.

Commands:
  wait time [<amount> [unit]]
  kbd press|release|click <key>
  kbd type <text>
  mouse press|release|click|double|triple <button>
  mouse scroll <amount> <x|y>
  mouse move <x> <y> <abs|rel>

Run 'scripter grammar' for the full table.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return scerr.New("missing script argument").
				WithCode(scerr.CodeScriptUnreadable).
				WithDetail("usage", cmd.UseLine())
		}
		return runScript(cmd, args[0])
	},
}

// Execute runs the root command and reports a failure once on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SCRIPTER_CONFIG or ./scripter.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	addRunFlags(rootCmd)
	cobra.OnFinalize(closeLog)
}

// setup loads the configuration and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	closeLog()

	var closer io.Closer
	logger, closer, err = logging.NewLogger(logging.LoggerConfig{
		Name:    "scripter",
		Level:   appConfig.General.LogLevel,
		Format:  appConfig.General.LogFormat,
		Verbose: verbose,
		Output:  cmd.ErrOrStderr(),
		File:    appConfig.General.LogFile,
	})
	if err != nil {
		return err
	}
	logCloser = closer
	sclog.SetDefault(logger)

	logger.Debug("Configuration loaded", sclog.Fields{
		"source":  appConfig.Source,
		"backend": appConfig.Run.Backend,
	})
	return nil
}

// closeLog releases the log file of the previous setup, if any
func closeLog() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		fmt.Fprintln(os.Stderr, tui.RenderError("closing log file: "+err.Error()))
	}
	logCloser = nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, tui.RenderError(err.Error()))
}
