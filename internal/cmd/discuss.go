package cmd

import (
	"fmt"

	"github.com/Iron-Ham/parley/internal/discussion"
	"github.com/Iron-Ham/parley/internal/logging"
	"github.com/spf13/cobra"
)

var discussCmd = &cobra.Command{
	Use:   "discuss",
	Short: "Run a multi-round discussion among the configured models",
	Long: `Run a discussion in which every configured model is queried once per
round, sequentially in configuration order. Round 1 asks each model for
an evidence-based opinion on the research prompt; later rounds show each
model its own previous answer and its peers' latest answers. The
discussion stops once the average self-reported agreement reaches the
convergence threshold, or after the maximum number of interactions.

Every response is stored in a per-model SQLite file inside a freshly
timestamped session folder.

Examples:
  # Two-model discussion capped at five rounds
  parley discuss -t "cancer treatment" -p "a promising avenue for cancer treatment" -m 5

  # Use an alternate config file
  parley discuss -c ./parley.yaml -t "fusion energy" -p "the most viable fusion reactor design" -m 3`,
	RunE: runDiscuss,
}

var (
	discussTitle           string
	discussResearchPrompt  string
	discussMaxInteractions int
)

func init() {
	rootCmd.AddCommand(discussCmd)

	discussCmd.Flags().StringVarP(&discussTitle, "title", "t", "", "Title for the discussion session (required)")
	discussCmd.Flags().StringVarP(&discussResearchPrompt, "research-prompt", "p", "", "Research question under discussion (required)")
	discussCmd.Flags().IntVarP(&discussMaxInteractions, "max-interactions", "m", 0, "Maximum number of rounds, at least 2 (required)")
	_ = discussCmd.MarkFlagRequired("title")
	_ = discussCmd.MarkFlagRequired("research-prompt")
	_ = discussCmd.MarkFlagRequired("max-interactions")
}

func runDiscuss(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logging.NewLogger("", cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer log.Close()

	sess, err := discussion.NewSession(cfg, discussion.Settings{
		Title:           discussTitle,
		ResearchPrompt:  discussResearchPrompt,
		MaxInteractions: discussMaxInteractions,
	}, log)
	if err != nil {
		return err
	}
	defer sess.Close()

	fmt.Printf("Starting discussion with %d models. Max interactions: %d\n", len(cfg.Models), discussMaxInteractions)
	fmt.Printf("Session folder: %s\n", sess.Folder())

	result, err := sess.Run(cmd.Context())
	if err != nil {
		return err
	}

	switch result.Status {
	case discussion.StatusConverged:
		fmt.Printf("Consensus achieved after %d rounds (average agreement %.1f%%).\n", result.Rounds, result.Average)
	case discussion.StatusExhausted:
		fmt.Printf("No consensus after %d rounds (average agreement %.1f%%).\n", result.Rounds, result.Average)
	}

	fmt.Println("Review the conversation with:")
	fmt.Printf("  parley review --session-folder %q\n", result.Folder)
	return nil
}
