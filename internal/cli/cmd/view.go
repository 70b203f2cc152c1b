package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/splitframe/internal/tui"
)

var viewDocURL string

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Launch the interactive terminal host",
	Long: `Launch the terminal host: a simulated document with links.

Press s on a link for a shift+click (vertical split), a for an alt+click
(horizontal split). The config file is watched while the host runs; edits
apply on the next launch of a workspace.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg := *manager.Get()
		if viewDocURL != "" {
			cfg.Workspace.DocumentURL = viewDocURL
		}

		program := tea.NewProgram(
			tui.NewModel(&cfg, log),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := manager.Watch(ctx, log); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("config watcher: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			defer stop()
			_, err := program.Run()
			return err
		})
		g.Go(func() error {
			<-ctx.Done()
			program.Quit()
			return nil
		})

		return g.Wait()
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewDocURL, "doc", "", "document URL the workspace starts from (overrides config)")
	rootCmd.AddCommand(viewCmd)
}
