// Package cmd provides the command-line interface for adtlab.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/adtlab/config"
)

var cfg = config.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "adtlab",
	Short: "adtlab lets you explore bounded stacks and queues one command at a time.",
	Long: `adtlab lets you explore bounded stacks and queues one command at a ` +
		`time. Run "adtlab stack" or "adtlab queue" for an interactive console, ` +
		`or "adtlab serve" to drive both containers over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}

		if err := config.BindEnvironment(cmd); err != nil {
			return err
		}

		return cfg.Validate()
	},
}

func init() {
	cfg.AddFlags(rootCmd.PersistentFlags())
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Exit handlers, such as the session recorder flush, run
// before the process ends.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
