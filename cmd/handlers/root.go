package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slidesmith/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slidesmith",
		Short: "Slidesmith turns a repository into a timed presentation deck.",
		Long: `Slidesmith analyzes a GitHub repository or a local working copy and
generates a timed, localized slide deck: metadata is fetched, insights
are computed, a five-part narrative is built and slides are assembled
to fit a 3 or 5 minute talk.

Example:
  slidesmith generate https://github.com/golang/go
  slidesmith generate rails/rails --mode imrad --duration 5 --lang en`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.slidesmith.yaml)")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewShowCmd())
	rootCmd.AddCommand(NewCacheCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig loads configuration before any command runs.
func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
}
