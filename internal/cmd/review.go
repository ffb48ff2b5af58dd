package cmd

import (
	"github.com/Iron-Ham/parley/internal/review"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Browse the stored responses of a completed session",
	Long: `Open an interactive browser over the per-model response stores of a
session folder. Responses are listed newest-first with a short preview;
press enter to expand the full text.`,
	RunE: runReview,
}

var reviewSessionFolder string

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringVarP(&reviewSessionFolder, "session-folder", "s", "", "Path to the session folder containing model stores (required)")
	_ = reviewCmd.MarkFlagRequired("session-folder")
}

func runReview(cmd *cobra.Command, args []string) error {
	return review.Run(reviewSessionFolder)
}
