// Package config gathers the settings of the adtlab command line from flags,
// ADTLAB_* environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by adtlab.
const EnvPrefix = "adtlab"

// Config holds the settings shared by all commands.
type Config struct {
	StackCapacity int
	QueueCapacity int
	LogLevel      string
	LogJSON       bool
	Record        bool
	RecordPath    string
	MonitorPort   int
	OpenBrowser   bool
	HistoryPath   string
}

// Default returns the default settings.
func Default() Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = home + string(os.PathSeparator) + ".adtlab_history"
	}

	return Config{
		StackCapacity: 5,
		QueueCapacity: 5,
		LogLevel:      "warn",
		HistoryPath:   history,
	}
}

// AddFlags registers the settings as flags, using the current values as
// defaults.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.StackCapacity, "stack-capacity", c.StackCapacity,
		"initial capacity of the stack")
	fs.IntVar(&c.QueueCapacity, "queue-capacity", c.QueueCapacity,
		"initial capacity of the queue")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel,
		"log level: debug, info, warn or error")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON,
		"write logs as JSON")
	fs.BoolVar(&c.Record, "record", c.Record,
		"record every command outcome into a SQLite database")
	fs.StringVar(&c.RecordPath, "record-path", c.RecordPath,
		"database path without the .sqlite3 suffix; empty picks a unique name")
	fs.IntVar(&c.MonitorPort, "port", c.MonitorPort,
		"port of the HTTP server; 0 picks a random port")
	fs.BoolVar(&c.OpenBrowser, "open", c.OpenBrowser,
		"open the HTTP server in a browser")
	fs.StringVar(&c.HistoryPath, "history", c.HistoryPath,
		"file that keeps the console history")
}

// Validate checks that the settings make sense.
func (c Config) Validate() error {
	var errs []error

	if c.StackCapacity < 1 {
		errs = append(errs,
			fmt.Errorf("stack capacity must be at least 1, got %d", c.StackCapacity))
	}

	if c.QueueCapacity < 1 {
		errs = append(errs,
			fmt.Errorf("queue capacity must be at least 1, got %d", c.QueueCapacity))
	}

	if c.MonitorPort < 0 || c.MonitorPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.MonitorPort))
	}

	return errors.Join(errs...)
}

// LoadDotEnv loads environment variables from the given files, or from .env
// if none is given. A missing default .env file is not an error. Variables
// that are already set win over the file.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
			return nil
		}

		files = []string{".env"}
	}

	return godotenv.Load(files...)
}

// BindEnvironment sets every flag of the command that was not given on the
// command line from the matching ADTLAB_ environment variable. The flag
// "stack-capacity" reads ADTLAB_STACK_CAPACITY.
func BindEnvironment(command *cobra.Command) error {
	var errs []string

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	command.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(configName) {
			return
		}

		err := command.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(configName)))
		if err != nil {
			errs = append(errs, err.Error())
		}
	})

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("error mapping environment variables to flags: %s",
		strings.Join(errs, "; "))
}
