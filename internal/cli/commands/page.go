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
	pageRegistry string
	pageSpace    string
	pageSearch   string
)

// pageCmd is the page command
var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "show a registry page with spaces and stats",
	Long: `Fetch the spaces, stats, and first listing page of a registry in one shot,
the same bootstrap the dashboard performs when a registry view opens.`,
	Example: `  # Model registry overview
  $ opsmlctl page

  # Data registry restricted to one space
  $ opsmlctl page -r data --space ops`,
	RunE: runPage,
}

func init() {
	pageCmd.Flags().StringVarP(&pageRegistry, "registry", "r", "model", "registry type")
	pageCmd.Flags().StringVar(&pageSpace, "space", "", "restrict the page to one space")
	pageCmd.Flags().StringVar(&pageSearch, "search", "", "filter card names by search term")
	pageCmd.SilenceUsage = true
}

func runPage(cmd *cobra.Command, args []string) error {
	rt, err := parseRegistryFlag(pageRegistry)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newClient()
	if err != nil {
		return err
	}

	if pageSpace != "" {
		ui.PrintInfo("Fetching %s registry page for space '%s'...", rt, pageSpace)
	} else {
		ui.PrintInfo("Fetching %s registry page...", rt)
	}

	bootstrap, err := apiClient.SetupRegistryPage(ctx, client.SetupRequest{
		RegistryType: rt,
		Space:        pageSpace,
		Name:         pageSearch,
	})
	if err != nil {
		ui.PrintError("failed to load registry page: %v", err)
		return fmt.Errorf("page operation failed")
	}

	ui.PrintBold("%s REGISTRY", bootstrap.RegistryType)
	fmt.Printf("  spaces: %v\n", bootstrap.Spaces)
	fmt.Printf("  names: %d  versions: %d\n\n",
		bootstrap.Stats.NbrNames, bootstrap.Stats.NbrVersions)

	fmt.Println(ui.Styles.Header.Render(fmt.Sprintf("  %-12s %-24s %-10s %-9s %s", "SPACE", "NAME", "VERSION", "VERSIONS", "UPDATED")))
	for _, row := range bootstrap.Page {
		fmt.Printf("  %-12s %-24s %-10s %-9d %s\n",
			row.Space, row.Name, row.Version, row.NbrVersions,
			row.UpdatedAt.Format("2006-01-02 15:04"))
	}
	if len(bootstrap.Page) == 0 {
		fmt.Println(ui.Styles.Dim.Render("  no cards found"))
	}
	return nil
}
