package cmd

import (
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items in catalog order",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of items (0 = all)")
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	items, err := a.engine.Items()
	if err != nil {
		return err
	}
	if listLimit > 0 && len(items) > listLimit {
		items = items[:listLimit]
	}
	return writeItems(cmd.OutOrStdout(), items)
}
