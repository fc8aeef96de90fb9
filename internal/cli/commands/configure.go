package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/aravindan888/opsml/internal/cli/config"
	"github.com/aravindan888/opsml/internal/cli/ui"
)

// configureCmd is the configure command
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "configure the registry server connection",
	Long: `Prompt for the registry server address and an optional access token, then
save them to ~/.opsmlctl/config.json for subsequent commands.`,
	Example: `  $ opsmlctl configure`,
	RunE:    runConfigure,
}

func init() {
	configureCmd.SilenceUsage = true
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	serverPrompt := &survey.Input{
		Message: "Registry server address:",
		Default: cfg.Server,
	}
	if err := survey.AskOne(serverPrompt, &cfg.Server, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	tokenPrompt := &survey.Password{
		Message: "Access token (leave empty for none):",
	}
	if err := survey.AskOne(tokenPrompt, &cfg.AccessToken); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	ui.PrintSuccess("configuration saved")
	return nil
}
