package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/scripter/internal/tui"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check <script>",
	Short: "Parse a script without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := loadScript(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !checkQuiet {
			for _, st := range script.Statements {
				text := st.Command.String()
				verb, rest, _ := strings.Cut(text, " ")
				fmt.Fprintf(out, "%s  %s %s\n",
					tui.LineNumberStyle.Render(fmt.Sprint(st.Line)),
					tui.VerbStyle.Render(verb),
					rest)
			}
		}
		fmt.Fprintln(out, tui.RenderOK(fmt.Sprintf("%s: %d statements OK", args[0], script.Len())))
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "only print the summary")
	rootCmd.AddCommand(checkCmd)
}
