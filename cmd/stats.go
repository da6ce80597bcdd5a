package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor and message statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.Stats(cmd.Context(), time.Now())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Visitors:        %d total, %d unique\n", stats.TotalVisitors, stats.UniqueVisitors)
		fmt.Fprintf(out, "Today:           %d\n", stats.VisitorsToday)
		fmt.Fprintf(out, "Last 7 days:     %d\n", stats.VisitorsThisWeek)
		fmt.Fprintf(out, "Messages:        %d total, %d this week\n", stats.TotalMessages, stats.MessagesThisWeek)
		if len(stats.TopPaths) > 0 {
			fmt.Fprintln(out, "Top paths:")
			for _, p := range stats.TopPaths {
				fmt.Fprintf(out, "  %-30s %d\n", p.Path, p.Hits)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
