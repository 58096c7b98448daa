package cmd

import (
	"fmt"

	"github.com/josephlewis42/jartos/core/logger"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the session event log.",
}

// readEvents passes every logged event to handler.
func readEvents(handler func(le *logger.LogEntry)) error {
	config, err := loadConfig()
	if err != nil {
		return err
	}

	fd, err := config.ReadAppLog()
	if err != nil {
		return err
	}
	defer fd.Close()

	return logger.ReadJSONLinesLog(fd, handler)
}

func printYAML(cmd *cobra.Command, report interface{}) error {
	out, err := yaml.Marshal(report)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of events.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var report logger.Report
		if err := readEvents(report.Update); err != nil {
			return err
		}

		return printYAML(cmd, report)
	},
}

var bugReportCommand = &cobra.Command{
	Use:   "bugreport",
	Short: "Show invalid invocations, unknown commands and faults.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		report := logger.NewBugReport()
		if err := readEvents(report.Update); err != nil {
			return err
		}

		return printYAML(cmd, report)
	},
}

var sessionsCommand = &cobra.Command{
	Use:   "sessions",
	Short: "Summarize each session: login, commands and processes.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		report := &logger.InteractionReport{}
		if err := readEvents(report.Update); err != nil {
			return err
		}

		return printYAML(cmd, report)
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)
	eventsCmd.AddCommand(bugReportCommand)
	eventsCmd.AddCommand(sessionsCommand)
}
