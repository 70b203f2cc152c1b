// Package cmd provides Cobra CLI commands for splitframe.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/splitframe/internal/config"
	"github.com/bnema/splitframe/internal/logging"
)

var (
	manager *config.Manager
	log     zerolog.Logger

	rootCmd = &cobra.Command{
		Use:   "splitframe",
		Short: "Split a document view into recursive panes on link click",
		Long: `Splitframe - recursive split-pane viewing for documents.

Click a link with shift held and the view splits vertically; with alt held it
splits horizontally. Each split nests a new pane next to the one the click
came from, and repeated splits in the same direction extend the same row or
column instead of nesting deeper.

Use 'splitframe view' to launch the interactive terminal host, or
'splitframe export' to print the HTML a browser host would render.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			manager, err = config.NewManager()
			if err != nil {
				return fmt.Errorf("initialize config: %w", err)
			}
			if err := manager.Load(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			cfg := manager.Get()
			log = logging.New(logging.Config{
				Level:      logging.ParseLevel(cfg.Logging.Level),
				Format:     cfg.Logging.Format,
				TimeFormat: logging.DefaultConfig().TimeFormat,
			})
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
