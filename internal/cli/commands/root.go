package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aravindan888/opsml/internal/cli/client"
	"github.com/aravindan888/opsml/internal/cli/config"
	"github.com/aravindan888/opsml/internal/cli/types"
	"github.com/aravindan888/opsml/internal/cli/ui"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "opsmlctl",
	Short:   "opsml registry CLI",
	Version: version,
	Long: `A command-line tool for browsing an opsml card registry: spaces, aggregate
stats, registry pages, version history, and card metadata.`,
	Example: `  # Point the CLI at a registry server
  $ opsmlctl configure

  # List spaces in the model registry
  $ opsmlctl spaces

  # Show the data registry filtered to one space
  $ opsmlctl page -r data --space ops

  # Look up card metadata by name
  $ opsmlctl metadata --name churn-model --space ops`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(fmt.Sprintf("opsmlctl version %s\n", version))
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(spacesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(versionsCmd)
	rootCmd.AddCommand(metadataCmd)

	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// newClient builds a registry client from the saved CLI configuration.
func newClient() (*client.RegistryClient, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, fmt.Errorf("config load failed")
	}

	apiClient, err := client.NewRegistryClient(cfg.Server, cfg.AccessToken)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, fmt.Errorf("client creation failed")
	}

	return apiClient, nil
}

// parseRegistryFlag validates the shared --registry flag.
func parseRegistryFlag(raw string) (types.RegistryType, error) {
	rt, err := types.ParseRegistryType(raw)
	if err != nil {
		ui.PrintError("%v", err)
		return "", fmt.Errorf("invalid registry type")
	}
	return rt, nil
}
