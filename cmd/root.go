package cmd

import (
	"github.com/venturelab/venturesim/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "venturesim",
	Short: "Entrepreneurship assessment simulator",
	Long:  "VentureSim — terminal simulation that assesses entrepreneurial competencies by having you build a venture from mindset to scale.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VENTURESIM_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VENTURESIM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
