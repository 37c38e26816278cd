package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slidesmith/internal/logger"
	"slidesmith/internal/render"
	"slidesmith/internal/store"
)

// NewListCmd creates the command listing stored presentations.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List generated presentations",
		Long:  `Display previously generated presentations stored in the local database, newest first.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runList(); err != nil {
				logger.Error("Failed to list presentations", err, nil)
				os.Exit(1)
			}
		},
	}
}

// NewShowCmd creates the command printing a stored deck.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [presentation-id]",
		Short: "Print a stored presentation as markdown",
		Long:  `Render a previously generated presentation to stdout as Marp markdown.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := runShow(args[0]); err != nil {
				logger.Error("Failed to show presentation", err, nil)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

func runList() error {
	st, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	summaries, err := st.ListPresentations()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No presentations yet. Generate one with 'slidesmith generate <url>'.")
		return nil
	}

	fmt.Println("Presentations:")
	fmt.Println("==============")
	for _, s := range summaries {
		fmt.Printf("%s  %-7s %-2s %s  %s\n",
			s.ID[:8], s.Mode, s.Language, s.CreatedAt.Format("2006-01-02 15:04"), s.Title)
	}
	fmt.Println("\nUse 'slidesmith show <id>' to print a deck.")
	return nil
}

func runShow(id string) error {
	st, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	deck, err := st.FindPresentation(id)
	if err != nil {
		return err
	}
	if deck == nil {
		return fmt.Errorf("presentation %s not found", id)
	}

	fmt.Print(render.RenderDeck(deck))
	return nil
}
