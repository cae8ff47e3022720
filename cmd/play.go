package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an assessment session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	// Context for provider initialization.
	playCmd.SetContext(context.Background())
}
