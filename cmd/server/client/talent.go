package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-api/internal/handlers/admin/v1alpha1"
)

var listTag string

func talentCommands() []*cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored talents",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, c *v1alpha1.Client) error {
				list, err := c.ListTalents(ctx, listTag)
				if err != nil {
					return fmt.Errorf("failed to list talents: %w", err)
				}
				fmt.Printf("Found %d talents\n", len(list))
				for _, t := range list {
					fmt.Printf("  %-40s %-20s rank %d/%d  %s\n", t.ID, t.Name, t.Rank, t.MaxRank, t.Rarity.Tier)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&listTag, "tag", "", "only list talents carrying this tag")

	return []*cobra.Command{
		{
			Use:   "validate [file]",
			Short: "Validate a talent JSON file without storing it (- reads stdin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				raw, err := readObject(args[0])
				if err != nil {
					return err
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					out, err := c.ValidateTalent(ctx, raw)
					if err != nil {
						return fmt.Errorf("failed to validate talent: %w", err)
					}
					if out.Valid {
						fmt.Println("Talent is valid; normalized form:")
						return printJSON(out.Talent)
					}
					fmt.Printf("Talent has %d issues:\n", len(out.Issues))
					printIssues(out.Issues)
					return nil
				})
			},
		},
		{
			Use:   "create [file]",
			Short: "Store a talent from a JSON file (- reads stdin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				raw, err := readObject(args[0])
				if err != nil {
					return err
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					t, err := c.CreateTalent(ctx, raw)
					if err != nil {
						return describeError("create talent", err)
					}
					fmt.Printf("Created talent %s\n", t.ID)
					return printJSON(t)
				})
			},
		},
		{
			Use:   "update [id] [changes-file]",
			Short: "Apply a JSON object of changes to a talent; null clears a field",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				changes, err := readObject(args[1])
				if err != nil {
					return err
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					t, err := c.UpdateTalent(ctx, args[0], changes)
					if err != nil {
						return describeError("update talent", err)
					}
					return printJSON(t)
				})
			},
		},
		listCmd,
		{
			Use:   "get [id]",
			Short: "Show a stored talent",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					t, err := c.GetTalent(ctx, args[0])
					if err != nil {
						return fmt.Errorf("failed to get talent: %w", err)
					}
					return printJSON(t)
				})
			},
		},
		{
			Use:   "delete [id]",
			Short: "Delete a stored talent",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					if err := c.DeleteTalent(ctx, args[0]); err != nil {
						return fmt.Errorf("failed to delete talent: %w", err)
					}
					fmt.Printf("Deleted talent %s\n", args[0])
					return nil
				})
			},
		},
		{
			Use:   "preview [id]",
			Short: "Roll the dice amounts of a stored talent's effects",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					out, err := c.PreviewEffects(ctx, args[0])
					if err != nil {
						return fmt.Errorf("failed to preview effects: %w", err)
					}
					fmt.Printf("Effects of talent %s:\n", out.TalentID)
					for _, p := range out.Previews {
						if !p.IsDice {
							fmt.Printf("  %-28s %-8s %s %s = %g\n", p.EffectID, p.Kind, p.Field, p.Notation, p.Rolled)
							continue
						}
						fmt.Printf("  %-28s %-8s %s %s rolled %v = %g (range %g-%g)\n",
							p.EffectID, p.Kind, p.Field, p.Notation, p.Dice, p.Rolled, p.Min, p.Max)
					}
					return nil
				})
			},
		},
		{
			Use:   "revalidate",
			Short: "List stored talents the server's schema rejects",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					out, err := c.RevalidateTalents(ctx)
					if err != nil {
						return fmt.Errorf("failed to revalidate talents: %w", err)
					}
					fmt.Printf("Checked %d talents, %d rejected\n", out.Checked, len(out.Rejected))
					for _, r := range out.Rejected {
						fmt.Printf("\n%s (%s)\n", r.Name, r.ID)
						printIssues(r.Issues)
					}
					return nil
				})
			},
		},
	}
}
