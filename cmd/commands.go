package cmd

import (
	"fmt"

	"github.com/josephlewis42/jartos/commands"
	"github.com/spf13/cobra"
)

var showUsage bool

// commandsCmd lists the commands the shell understands.
var commandsCmd = &cobra.Command{
	Use:     "commands",
	Aliases: []string{"builtins"},
	Short:   "Show the commands available in the shell.",
	Args:    cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, spec := range commands.AllCommands() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-13s- %s\n", spec.Name, spec.Short)
			if showUsage && spec.Usage != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%15s%s\n", "", spec.Usage)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
	commandsCmd.Flags().BoolVar(&showUsage, "usage", false, "Show usage lines for commands that take arguments.")
}
