package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the API connection",
	Long:  `Test the connection to your Ops Manager or Cloud Manager instance and display basic information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s at %s...\n", client.Variant(), client.Host())

	ctx := context.Background()
	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Println("✓ Connection successful!")

	page, err := client.GetGroups(ctx)
	if err != nil {
		return fmt.Errorf("failed to get groups: %w", err)
	}
	groups := page.Results()

	fmt.Printf("\nStatistics:\n")
	fmt.Printf("- Authenticated as: %s\n", client.Username())
	fmt.Printf("- Visible groups: %d\n", len(groups))

	if len(groups) > 0 {
		fmt.Printf("\nGroups:\n")
		for _, group := range groups {
			fmt.Printf("  • %s (ID: %s)\n", group.Str("name"), group.ID())
		}
	}

	return nil
}
