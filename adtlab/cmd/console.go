package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/adtlab/console"
	"github.com/sarchlab/adtlab/demo"
)

var stackCmd = &cobra.Command{
	Use:   "stack",
	Short: "Open an interactive console on a bounded stack.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := newSession(cfg)
		if err != nil {
			return err
		}

		return runConsole(s.stackController(os.Stdout))
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Open an interactive console on a bounded queue.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := newSession(cfg)
		if err != nil {
			return err
		}

		return runConsole(s.queueController(os.Stdout))
	},
}

func runConsole(c demo.Controller) error {
	return console.New(c, os.Stdout).
		WithHistory(cfg.HistoryPath).
		Loop()
}

func init() {
	rootCmd.AddCommand(stackCmd)
	rootCmd.AddCommand(queueCmd)
}
