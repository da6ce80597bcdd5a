package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/pillar-dev/internal/content"
	"github.com/Zachkp/pillar-dev/internal/motion"
)

var (
	decodeSeed     uint64
	decodeInterval time.Duration
	decodeText     string
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Play the hero decode effect in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []motion.DecoderOption
		if cmd.Flags().Changed("seed") {
			opts = append(opts, motion.WithSeed(decodeSeed))
		}
		dec := motion.NewDecoder(decodeText, opts...)
		return playDecode(cmd.Context(), dec, decodeInterval, cmd.OutOrStdout())
	},
}

// playDecode redraws the current line on every frame and ends it once the
// text has settled.
func playDecode(ctx context.Context, dec *motion.Decoder, interval time.Duration, out io.Writer) error {
	return dec.Run(ctx, interval, func(frame string, done bool) error {
		if done {
			_, err := fmt.Fprintf(out, "\r%s\n", frame)
			return err
		}
		_, err := fmt.Fprintf(out, "\r%s", frame)
		return err
	})
}

func init() {
	decodeCmd.Flags().Uint64Var(&decodeSeed, "seed", 0, "seed for a reproducible animation")
	decodeCmd.Flags().DurationVar(&decodeInterval, "interval", motion.DecodeInterval, "time between frames")
	decodeCmd.Flags().StringVar(&decodeText, "text", content.Tagline, "text to decode")
	rootCmd.AddCommand(decodeCmd)
}
