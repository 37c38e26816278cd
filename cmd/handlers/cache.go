package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slidesmith/internal/logger"
	"slidesmith/internal/store"
)

// NewCacheCmd creates the cache management command.
func NewCacheCmd() *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the repository metadata cache",
		Long:  `Inspect and clear the SQLite cache holding fetched repository metadata.`,
	}

	cacheCmd.AddCommand(newCacheStatsCmd())
	cacheCmd.AddCommand(newCacheClearCmd())

	return cacheCmd
}

func newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		Long:  `Display the number of cached repositories, stored presentations and database size.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runCacheStats(); err != nil {
				logger.Error("Failed to get cache stats", err, nil)
				os.Exit(1)
			}
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear cached repository metadata",
		Long:  `Remove all cached repository metadata. Stored presentations are kept.`,
		Run: func(cmd *cobra.Command, args []string) {
			confirm, _ := cmd.Flags().GetBool("confirm")
			if err := runCacheClear(confirm); err != nil {
				logger.Error("Failed to clear cache", err, nil)
				os.Exit(1)
			}
		},
	}

	clearCmd.Flags().Bool("confirm", false, "Skip confirmation prompt")
	return clearCmd
}

func runCacheStats() error {
	st, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	stats, err := st.GetCacheStats()
	if err != nil {
		return fmt.Errorf("failed to get cache statistics: %w", err)
	}

	fmt.Println("Cache Statistics")
	fmt.Println("================")
	fmt.Printf("Repositories cached: %d\n", stats.MetadataCount)
	fmt.Printf("Presentations stored: %d\n", stats.PresentationCount)
	fmt.Printf("Database size: %.2f MB\n", float64(stats.CacheSize)/1024/1024)
	fmt.Printf("Last updated: %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05"))
	return nil
}

func runCacheClear(confirm bool) error {
	if !confirm {
		fmt.Print("This will remove all cached repository metadata. Continue? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" && response != "yes" {
			fmt.Println("Cache clear cancelled")
			return nil
		}
	}

	st, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.ClearCache(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Println("Cache cleared")
	return nil
}
