package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aravindan888/opsml/internal/cli/client"
	"github.com/aravindan888/opsml/internal/cli/ui"
)

var (
	statsRegistry   string
	statsSpace      string
	statsSearchTerm string
)

// statsCmd is the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "show aggregate registry stats",
	Example: `  # Stats for the whole model registry
  $ opsmlctl stats

  # Stats for one space, filtered by a search term
  $ opsmlctl stats --space ops --search churn`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsRegistry, "registry", "r", "model", "registry type")
	statsCmd.Flags().StringVar(&statsSpace, "space", "", "restrict stats to one space")
	statsCmd.Flags().StringVar(&statsSearchTerm, "search", "", "restrict stats to matching card names")
	statsCmd.SilenceUsage = true
}

func runStats(cmd *cobra.Command, args []string) error {
	rt, err := parseRegistryFlag(statsRegistry)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newClient()
	if err != nil {
		return err
	}

	resp, err := apiClient.GetRegistryStats(ctx, client.StatsRequest{
		RegistryType: rt,
		SearchTerm:   statsSearchTerm,
		Space:        statsSpace,
	})
	if err != nil {
		ui.PrintError("failed to fetch stats: %v", err)
		return fmt.Errorf("stats operation failed")
	}

	ui.PrintBold("REGISTRY STATS (%s)", rt)
	fmt.Printf("  names:    %d\n", resp.Stats.NbrNames)
	fmt.Printf("  spaces:   %d\n", resp.Stats.NbrSpaces)
	fmt.Printf("  versions: %d\n", resp.Stats.NbrVersions)
	return nil
}
