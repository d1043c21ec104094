package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-api/internal/entities/talents"
	"github.com/KirkDiggler/talent-api/internal/handlers/admin/v1alpha1"
)

var refreshRarities bool

var raritiesCmd = &cobra.Command{
	Use:   "rarities",
	Short: "Manage rarity records",
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List rarity records in display order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, c *v1alpha1.Client) error {
				items, err := c.ListRarities(ctx, refreshRarities)
				if err != nil {
					return fmt.Errorf("failed to list rarities: %w", err)
				}
				printRarities(items)
				return nil
			})
		},
	}
	listCmd.Flags().BoolVar(&refreshRarities, "refresh", false, "reload records from the remote rarity service first")

	raritiesCmd.AddCommand(
		listCmd,
		&cobra.Command{
			Use:   "create [file]",
			Short: "Create a rarity from a JSON file (- reads stdin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				raw, err := readObject(args[0])
				if err != nil {
					return err
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					item, err := c.CreateRarity(ctx, raw)
					if err != nil {
						return describeError("create rarity", err)
					}
					return printJSON(item)
				})
			},
		},
		&cobra.Command{
			Use:   "update [id] [changes-file]",
			Short: "Apply a JSON object of changes to a rarity",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				changes, err := readObject(args[1])
				if err != nil {
					return err
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					item, err := c.UpdateRarity(ctx, args[0], changes)
					if err != nil {
						return describeError("update rarity", err)
					}
					return printJSON(item)
				})
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a rarity record",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					if err := c.DeleteRarity(ctx, args[0]); err != nil {
						return fmt.Errorf("failed to delete rarity: %w", err)
					}
					fmt.Printf("Deleted rarity %s\n", args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "move [from] [to]",
			Short: "Move the record at one index to another",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				from, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid from index %q: %w", args[0], err)
				}
				to, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid to index %q: %w", args[1], err)
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					items, err := c.MoveRarity(ctx, from, to)
					if err != nil {
						return fmt.Errorf("failed to move rarity: %w", err)
					}
					printRarities(items)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Restore the default rarity records",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					items, err := c.ResetRarities(ctx)
					if err != nil {
						return fmt.Errorf("failed to reset rarities: %w", err)
					}
					printRarities(items)
					return nil
				})
			},
		},
	)
}

func printRarities(items []talents.RarityItem) {
	fmt.Printf("Found %d rarities\n", len(items))
	for i, item := range items {
		fmt.Printf("  %2d. %-12s %s  weight %-8g %s\n", i, item.Name, item.Color, item.Weight, item.ID)
	}
}
