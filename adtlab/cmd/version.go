package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of adtlab",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			printVersion(os.Stdout)
		},
	}

	rootCmd.AddCommand(versionCmd)
}

func printVersion(out io.Writer) {
	version := "(devel)"
	commit := "unknown"

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				commit = s.Value
			}
		}
	}

	fmt.Fprintln(out, "Version: "+version)
	fmt.Fprintln(out, "Build Commit: "+commit)
	fmt.Fprintln(out, "Go Version: "+runtime.Version())
}
