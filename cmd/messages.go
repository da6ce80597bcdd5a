package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var messagesLimit int

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List stored contact messages, newest first",
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

		messages, err := st.Messages(cmd.Context(), messagesLimit)
		if err != nil {
			return err
		}
		if len(messages) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No messages.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RECEIVED\tFROM\tEMAIL\tSUBJECT")
		for _, m := range messages {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Name, m.Email, m.Subject)
		}
		return w.Flush()
	},
}

func init() {
	messagesCmd.Flags().IntVarP(&messagesLimit, "limit", "n", 50, "maximum number of messages")
	rootCmd.AddCommand(messagesCmd)
}
