package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pillar",
	Short: "Pillar.ai portfolio site",
	Long: `Pillar serves the Pillar.ai single-page portfolio: hero, project gallery,
career timeline, skills showcase and contact form. Configuration is read
from the environment and an optional .env file.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
