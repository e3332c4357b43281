package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"panectl/internal/app"
)

// logLevel overrides logging.level from the configuration files.
var logLevel string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "panectl",
	Short: "Build, store and explore terminal pane layouts",
	Long: `panectl arranges views in nested splits, lineups and tab groups.
Layouts can be derived from YAML scaffolds, saved by name, rendered to the
terminal, edited interactively in a TUI and served to AI assistants over MCP.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown layouts, malformed dumps)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "panectl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication loads the configuration and opens the layout store.
// layoutName selects the TUI startup layout and may be empty.
func newApplication(layoutName string) (*app.Application, error) {
	return app.NewApplication(app.NewConfig(logLevel, layoutName, rootCmd.Version))
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newDeriveCmd())
	rootCmd.AddCommand(newLayoutsCmd())
	rootCmd.AddCommand(newServeCmd())

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default from config)")
}
