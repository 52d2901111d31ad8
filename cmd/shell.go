package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/josephlewis42/lsh/core/config"
	"github.com/josephlewis42/lsh/core/logger"
	"github.com/josephlewis42/lsh/core/shell"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// newLineSource picks line editing for terminals and plain line reads
// otherwise. The returned function releases the source.
func newLineSource(stdio shell.IO, cfg *config.Configuration) (shell.LineSource, func() error, error) {
	if isTerminal(stdio.Stdin()) {
		rl, err := shell.NewReadlineSource(stdio, cfg.HistoryPath())
		if err != nil {
			return nil, nil, err
		}
		return rl, rl.Close, nil
	}

	return shell.NewBufferedSource(stdio.Stdin(), stdio.Stdout()), func() error { return nil }, nil
}

// runShell runs the interpreter over the command's streams until it stops.
func runShell(cmd *cobra.Command) error {
	appLogger := log.New(cmd.ErrOrStderr(), "[lsh] ", 0)

	dir, err := configDir()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("prompt") {
		cfg.Prompt = promptFlag
	}
	if flags.Changed("color") {
		cfg.Color = colorFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stdio := shell.NewStdIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	lines, closeLines, err := newLineSource(stdio, cfg)
	if err != nil {
		return err
	}
	defer closeLines()

	sh := shell.New(stdio, lines)
	sh.Prompt = cfg.Prompt
	sh.Home = cfg.Home
	sh.Log = appLogger

	sh.ErrorColor, err = shell.NewErrorColor(cfg.Color, isTerminal(stdio.Stderr()))
	if err != nil {
		return err
	}

	if cfg.EventLogEnabled() && !noLog {
		logFd, err := cfg.OpenEventLog()
		if err != nil {
			return err
		}
		defer logFd.Close()

		sh.Events = logger.NewJsonLinesLogRecorder(logFd).NewSession()
	}

	if err := sh.Run(); err != nil {
		fmt.Fprintf(stdio.Stderr(), "Application error: %v\n", err)
	}
	return nil
}
