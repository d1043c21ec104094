package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/talent-api/internal/handlers/admin/v1alpha1"
)

var reportLimit int

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Validate and store reports",
}

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(func(ctx context.Context, c *v1alpha1.Client) error {
				reports, err := c.ListReports(ctx, reportLimit)
				if err != nil {
					return fmt.Errorf("failed to list reports: %w", err)
				}
				fmt.Printf("Found %d reports\n", len(reports))
				for _, r := range reports {
					fmt.Printf("  %s  %s  %s\n", r.Date, r.Title, r.ID)
				}
				return nil
			})
		},
	}
	listCmd.Flags().IntVar(&reportLimit, "limit", 0, "maximum number of reports (0 lists all)")

	reportsCmd.AddCommand(
		&cobra.Command{
			Use:   "validate [file]",
			Short: "Validate a report JSON file without storing it (- reads stdin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				raw, err := readObject(args[0])
				if err != nil {
					return err
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					out, err := c.ValidateReport(ctx, raw)
					if err != nil {
						return fmt.Errorf("failed to validate report: %w", err)
					}
					if out.Valid {
						fmt.Println("Report is valid")
						return printJSON(out.Report)
					}
					fmt.Printf("Report has %d issues:\n", len(out.Issues))
					printIssues(out.Issues)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "create [file]",
			Short: "Store a report from a JSON file (- reads stdin)",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				raw, err := readObject(args[0])
				if err != nil {
					return err
				}
				return run(func(ctx context.Context, c *v1alpha1.Client) error {
					r, err := c.CreateReport(ctx, raw)
					if err != nil {
						return describeError("create report", err)
					}
					fmt.Printf("Created report %s\n", r.ID)
					return printJSON(r)
				})
			},
		},
		listCmd,
	)
}
