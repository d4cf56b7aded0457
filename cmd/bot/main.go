package main

import (
	"ewidencja-bot/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ewidencja-bot",
		Short: "Ewidencja czasu pracy",
		Long:  "Telegram bot for the monthly employee attendance register: hours, absences, department calendars and contract norms",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(config.GetBotConfig())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(config.GetBotConfig())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(overviewCmd(), importCalendarCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatalf("Error: %v", err)
	}
}
