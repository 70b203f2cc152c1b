package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/splitframe/internal/layout"
	"github.com/bnema/splitframe/internal/render"
)

var exportDocURL string

var exportCmd = &cobra.Command{
	Use:   "export SPLIT...",
	Short: "Apply a split sequence and print the resulting HTML",
	Long: `Apply a scripted sequence of splits to an empty workspace and print
the nested flexbox HTML a browser host would render.

Each SPLIT is direction:url, where direction is v (vertical, shift+click)
or h (horizontal, alt+click). Splits originate from the most recently
opened pane, like repeated clicks in the newest pane would.

Example:
  splitframe export v:https://go.dev/ref/spec h:https://go.dev/doc/effective_go`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := manager.Get()
		docURL := cfg.Workspace.DocumentURL
		if exportDocURL != "" {
			docURL = exportDocURL
		}

		orch := layout.NewOrchestrator(layout.NewLayout(), docURL, log)
		for _, arg := range args {
			dir, rawURL, err := parseSplitArg(arg)
			if err != nil {
				return err
			}
			anchor := layout.Anchor{
				URL:    rawURL,
				Text:   rawURL,
				PaneID: orch.ActivePane(),
			}
			if _, err := orch.OpenInSplit(anchor, dir); err != nil {
				return fmt.Errorf("split %q: %w", arg, err)
			}
		}

		renderer := render.NewHTML()
		renderer.Overlay = cfg.Workspace.Placement()
		out, err := renderer.Render(orch.Snapshot())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func parseSplitArg(arg string) (layout.Direction, string, error) {
	prefix, rawURL, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, "", fmt.Errorf("split %q: want direction:url", arg)
	}
	switch strings.ToLower(prefix) {
	case "v":
		return layout.DirectionVertical, rawURL, nil
	case "h":
		return layout.DirectionHorizontal, rawURL, nil
	default:
		return 0, "", fmt.Errorf("split %q: direction must be v or h", arg)
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportDocURL, "doc", "", "document URL the workspace starts from (overrides config)")
	rootCmd.AddCommand(exportCmd)
}
