package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aravindan888/opsml/internal/cli/ui"
)

var spacesRegistry string

// spacesCmd is the spaces command
var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "list spaces in a registry",
	Example: `  # Spaces in the model registry
  $ opsmlctl spaces

  # Spaces in the data registry
  $ opsmlctl spaces -r data`,
	RunE: runSpaces,
}

func init() {
	spacesCmd.Flags().StringVarP(&spacesRegistry, "registry", "r", "model", "registry type (model, data, experiment, audit, prompt, deck)")
	spacesCmd.SilenceUsage = true
}

func runSpaces(cmd *cobra.Command, args []string) error {
	rt, err := parseRegistryFlag(spacesRegistry)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newClient()
	if err != nil {
		return err
	}

	resp, err := apiClient.GetSpaces(ctx, rt)
	if err != nil {
		ui.PrintError("failed to list spaces: %v", err)
		return fmt.Errorf("spaces operation failed")
	}

	ui.PrintBold("SPACES (%s registry)", rt)
	for _, space := range resp.Spaces {
		fmt.Printf("  %s\n", space)
	}
	if len(resp.Spaces) == 0 {
		fmt.Println(ui.Styles.Dim.Render("  no spaces found"))
	}
	return nil
}
