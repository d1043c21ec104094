package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-api/internal/orchestrators/talent"
)

var revalidateCmd = &cobra.Command{
	Use:   "revalidate",
	Short: "Check stored talents against the configured schema",
	Long: `Run every stored talent through the schema built from the current
configuration and list the ones it rejects. Use it after narrowing the tier or
resource enumerations. Talents are read from Redis, so redis.enabled must be set
for the check to see anything.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() { _ = a.Close() }()

		if !cfg.Redis.Enabled {
			logger.Warn("redis is disabled; there are no stored talents to check")
		}

		out, err := a.talents.RevalidateTalents(ctx, &talent.RevalidateTalentsInput{})
		if err != nil {
			return fmt.Errorf("failed to revalidate talents: %w", err)
		}

		fmt.Printf("Checked %d talents, %d rejected\n", out.Checked, len(out.Rejected))
		for _, r := range out.Rejected {
			fmt.Printf("\n%s (%s)\n", r.Name, r.ID)
			for _, issue := range r.Issues {
				fmt.Printf("  %s [%s]\n", issue.String(), issue.Reason)
			}
		}
		return nil
	},
}
