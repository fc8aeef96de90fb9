package commands

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/aravindan888/opsml/internal/cli/ui"
	"github.com/aravindan888/opsml/internal/domain"
)

var (
	metadataRegistry string
	metadataUID      string
	metadataName     string
	metadataSpace    string
	metadataVersion  string
)

// metadataCmd is the metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "show metadata for one card",
	Long: `Look up one card's metadata. With --uid the card is fetched directly;
otherwise the uid is resolved from --name, --space, and --version first.`,
	Example: `  # By uid
  $ opsmlctl metadata --uid 9f0c2e4a-churn-140

  # By coordinates
  $ opsmlctl metadata --name churn-model --space ops --version 1.4.0`,
	RunE: runMetadata,
}

func init() {
	metadataCmd.Flags().StringVarP(&metadataRegistry, "registry", "r", "model", "registry type")
	metadataCmd.Flags().StringVar(&metadataUID, "uid", "", "card uid")
	metadataCmd.Flags().StringVar(&metadataName, "name", "", "card name")
	metadataCmd.Flags().StringVar(&metadataSpace, "space", "", "card space")
	metadataCmd.Flags().StringVar(&metadataVersion, "version", "", "card version")
	metadataCmd.SilenceUsage = true
}

func runMetadata(cmd *cobra.Command, args []string) error {
	rt, err := parseRegistryFlag(metadataRegistry)
	if err != nil {
		return err
	}

	if metadataUID == "" && metadataName == "" {
		ui.PrintError("either --uid or --name is required")
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, err := newClient()
	if err != nil {
		return err
	}

	params := url.Values{}
	if metadataUID != "" {
		params.Set("uid", metadataUID)
	}
	if metadataName != "" {
		params.Set("name", metadataName)
	}
	if metadataSpace != "" {
		params.Set("space", metadataSpace)
	}
	if metadataVersion != "" {
		params.Set("version", metadataVersion)
	}

	uid, err := apiClient.ResolveUID(ctx, params, rt)
	if err != nil {
		if domain.IsNotFound(err) {
			ui.PrintWarning("no card matches the given coordinates")
			return fmt.Errorf("card not found")
		}
		ui.PrintError("failed to resolve uid: %v", err)
		return fmt.Errorf("metadata operation failed")
	}

	card, err := apiClient.GetCardMetadata(ctx, uid, rt)
	if err != nil {
		ui.PrintError("failed to fetch metadata: %v", err)
		return fmt.Errorf("metadata operation failed")
	}

	ui.PrintBold("CARD %s", card.UID)
	fmt.Printf("  name:      %s\n", card.Name)
	fmt.Printf("  space:     %s\n", card.Space)
	fmt.Printf("  version:   %s\n", card.Version)
	fmt.Printf("  registry:  %s\n", card.RegistryType)
	if card.InterfaceType != "" {
		fmt.Printf("  interface: %s\n", card.InterfaceType)
	}
	if card.DataType != "" {
		fmt.Printf("  data type: %s\n", card.DataType)
	}
	if len(card.Tags) > 0 {
		fmt.Printf("  tags:      %v\n", card.Tags)
	}
	fmt.Printf("  created:   %s\n", card.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
