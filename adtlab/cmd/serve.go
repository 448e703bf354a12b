package cmd

import (
	"os"
	"os/signal"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/adtlab/monitoring"
	"github.com/sarchlab/adtlab/tracing"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a stack and a queue over HTTP until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		s, err := newSession(cfg)
		if err != nil {
			return err
		}

		counter := tracing.NewFeedbackCounter(nil)
		s.hooks = append(s.hooks, counter)

		m := monitoring.NewMonitor().WithPortNumber(cfg.MonitorPort)
		m.RegisterFeedbackCounter(counter)
		m.RegisterController(s.stackController(nil))
		m.RegisterController(s.queueController(nil))

		url := m.StartServer()
		s.logger.WithField("url", url).Info("lab server started")

		if cfg.OpenBrowser {
			if err := browser.OpenURL(url + "/api/list_containers"); err != nil {
				s.logger.WithError(err).Warn("cannot open browser")
			}
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt

		return m.StopServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
