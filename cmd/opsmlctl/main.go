package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aravindan888/opsml/internal/cli/commands"
	"github.com/aravindan888/opsml/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// cobra reports unknown subcommands without styling
		if strings.Contains(err.Error(), "unknown command") {
			ui.PrintError("%s", err.Error())
			fmt.Println("\nRun 'opsmlctl --help' for usage.")
		}
		os.Exit(1)
	}
}
