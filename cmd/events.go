package cmd

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/lsh/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var showSessions bool

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the shell event log.",
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of events.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := loadConfig()
		if err != nil {
			return err
		}
		if !config.EventLogEnabled() {
			return errors.New("the event log is disabled in the configuration")
		}

		fd, err := config.ReadEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		var report interface{}
		if showSessions {
			sessions := &logger.SessionReport{}
			err = logger.ReadJSONLinesLog(fd, sessions.Update)
			report = sessions
		} else {
			summary := logger.NewReport()
			err = logger.ReadJSONLinesLog(fd, summary.Update)
			report = summary
		}
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	reportCommand.Flags().BoolVar(&showSessions, "sessions", false, "show the commands of each session instead of totals")

	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
}
