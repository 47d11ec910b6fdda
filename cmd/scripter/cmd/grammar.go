package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/scripter/internal/command"
	"github.com/msto63/scripter/internal/parser"
	"github.com/msto63/scripter/internal/tui"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Show the script command table and key names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, tui.RenderTitle("Commands"))
		verb := ""
		for _, rule := range parser.Grammar() {
			if rule.Verb != verb {
				verb = rule.Verb
				fmt.Fprintln(out, tui.VerbStyle.Render(verb))
			}
			fmt.Fprintf(out, "  %-8s %s\n", rule.Action, tui.RenderHelp(rule.Usage))
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.RenderTitle("Named keys"))
		fmt.Fprintln(out, "  "+strings.Join(command.KeyNames(), " "))
		fmt.Fprintln(out, tui.RenderHelp("  any other key token is typed as its first character"))

		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.RenderTitle("Time units"))
		fmt.Fprintln(out, "  milliseconds seconds minutes hours "+tui.RenderHelp("(default: seconds)"))
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}
