package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/josephlewis42/lsh/core/config"
	"github.com/josephlewis42/lsh/core/shell"
	"github.com/spf13/cobra"
)

var (
	cfgPath string

	promptFlag string
	colorFlag  string
	noLog      bool
)

// configDir returns the configuration directory, by default lsh under the
// user's configuration directory.
func configDir() (string, error) {
	if cfgPath != "" {
		return cfgPath, nil
	}

	userDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, "lsh"), nil
}

func loadConfig() (*config.Configuration, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	configuration, err := config.Load(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lsh",
	Short: "Little shell",
	Long: `A minimal interactive command interpreter.

lsh reads one command per line, splits it on whitespace and either runs it as
a builtin (cd, help, exit) or launches the named program from PATH and waits
for it to finish.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runShell(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory (default is $XDG_CONFIG_HOME/lsh)")

	rootCmd.Flags().StringVar(&promptFlag, "prompt", shell.DefaultPrompt, "prompt shown before each command")
	rootCmd.Flags().StringVar(&colorFlag, "color", shell.ColorAuto, "colorize error messages (always|auto|never)")
	rootCmd.Flags().BoolVar(&noLog, "no-log", false, "don't record commands in the event log")
}
