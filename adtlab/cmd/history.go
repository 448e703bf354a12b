package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sarchlab/adtlab/datarecording"
)

var (
	historyContainer string
	historyLimit     int
)

var historyCmd = &cobra.Command{
	Use:   "history <database.sqlite3>",
	Short: "Print the feedback recorded by a session started with --record.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); err != nil {
			return err
		}

		reader, err := datarecording.NewFeedbackReader(args[0])
		if err != nil {
			return err
		}
		defer reader.Close()

		entries, err := reader.Entries(cmd.Context(), historyContainer, historyLimit)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoFormatHeaders(false)
		table.SetHeader([]string{
			"ID", "Container", "Command", "Kind", "Size", "Message",
		})

		for _, e := range entries {
			table.Append([]string{
				e.ID, e.Container, e.Command, e.Kind,
				fmt.Sprintf("%d/%d", e.Size, e.Capacity), e.Message,
			})
		}

		table.Render()

		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyContainer, "container", "",
		"only show feedback of this container")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0,
		"maximum number of rows; 0 shows everything")
	rootCmd.AddCommand(historyCmd)
}
