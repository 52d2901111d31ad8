package cmd

import (
	"fmt"

	"github.com/josephlewis42/lsh/core/shell"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the commands handled inside the shell
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range shell.DefaultBuiltins().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
