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
	versionsRegistry string
	versionsSpace    string
	versionsPage     int
)

// versionsCmd is the versions command
var versionsCmd = &cobra.Command{
	Use:   "versions <name>",
	Short: "list versions of a card name",
	Example: `  # Versions of a model card
  $ opsmlctl versions churn-model --space ops

  # Second page of a long version history
  $ opsmlctl versions churn-model --page 1`,
	Args: cobra.ExactArgs(1),
	RunE: runVersions,
}

func init() {
	versionsCmd.Flags().StringVarP(&versionsRegistry, "registry", "r", "model", "registry type")
	versionsCmd.Flags().StringVar(&versionsSpace, "space", "", "card space")
	versionsCmd.Flags().IntVar(&versionsPage, "page", 0, "zero-based page number")
	versionsCmd.SilenceUsage = true
}

func runVersions(cmd *cobra.Command, args []string) error {
	rt, err := parseRegistryFlag(versionsRegistry)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newClient()
	if err != nil {
		return err
	}

	req := client.VersionPageRequest{
		RegistryType: rt,
		Space:        versionsSpace,
		Name:         args[0],
	}
	// only send page when the caller asked for one; page 0 still counts
	if cmd.Flags().Changed("page") {
		req.Page = &versionsPage
	}

	resp, err := apiClient.GetVersionPage(ctx, req)
	if err != nil {
		ui.PrintError("failed to list versions: %v", err)
		return fmt.Errorf("versions operation failed")
	}

	ui.PrintBold("VERSIONS of %s", args[0])
	for _, row := range resp.Page {
		fmt.Printf("  %-10s %-28s %s\n", row.Version, row.UID, row.CreatedAt.Format("2006-01-02 15:04"))
	}
	if len(resp.Page) == 0 {
		fmt.Println(ui.Styles.Dim.Render("  no versions found"))
	}
	return nil
}
