// Package config loads and watches splitframe's configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/splitframe/internal/layout"
)

const (
	appDirName = "splitframe"
	filePerm   = 0o644
	dirPerm    = 0o755
)

// Config is the complete splitframe configuration.
type Config struct {
	// Workspace defines split, overlay and pane handling behavior.
	Workspace WorkspaceConfig `mapstructure:"workspace" json:"workspace" toml:"workspace"`
	// Logging controls log level and output format.
	Logging LoggingConfig `mapstructure:"logging" json:"logging" toml:"logging"`
}

// WorkspaceConfig defines split and pane behavior.
type WorkspaceConfig struct {
	// DocumentURL is the document the view command starts from.
	DocumentURL string `mapstructure:"document_url" json:"document_url" toml:"document_url"`
	// HoverTimeoutMS is how long the control overlay stays visible after the
	// pointer stops moving, in milliseconds.
	HoverTimeoutMS int `mapstructure:"hover_timeout_ms" json:"hover_timeout_ms" toml:"hover_timeout_ms"`
	// ClickDebounceMS is the window within which repeated clicks from one
	// pane collapse into a single split, in milliseconds.
	ClickDebounceMS int `mapstructure:"click_debounce_ms" json:"click_debounce_ms" toml:"click_debounce_ms"`
	// OverlayPlacement docks the control overlay at the "start" or "end"
	// edge of a pane.
	OverlayPlacement string `mapstructure:"overlay_placement" json:"overlay_placement" toml:"overlay_placement"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" json:"level" toml:"level"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" json:"format" toml:"format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			DocumentURL:      "https://example.com/",
			HoverTimeoutMS:   3000,
			ClickDebounceMS:  200,
			OverlayPlacement: "end",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// OverlayPlacement maps the configured string to a layout placement.
func (w WorkspaceConfig) Placement() layout.Placement {
	if strings.EqualFold(w.OverlayPlacement, "start") {
		return layout.PlacementStart
	}
	return layout.PlacementEnd
}

// GetConfigDir returns the directory holding config.toml, creating nothing.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureDirectories creates the config directory when missing.
func EnsureDirectories() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return nil
}

func validateConfig(cfg *Config) error {
	switch strings.ToLower(cfg.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of trace, debug, info, warn, error", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not console or json", cfg.Logging.Format)
	}
	switch strings.ToLower(cfg.Workspace.OverlayPlacement) {
	case "start", "end":
	default:
		return fmt.Errorf("workspace.overlay_placement %q is not start or end", cfg.Workspace.OverlayPlacement)
	}
	if cfg.Workspace.DocumentURL == "" {
		return fmt.Errorf("workspace.document_url must not be empty")
	}
	return nil
}

func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Workspace.OverlayPlacement = strings.ToLower(strings.TrimSpace(cfg.Workspace.OverlayPlacement))
	if cfg.Workspace.HoverTimeoutMS <= 0 {
		cfg.Workspace.HoverTimeoutMS = DefaultConfig().Workspace.HoverTimeoutMS
	}
	if cfg.Workspace.ClickDebounceMS < 0 {
		cfg.Workspace.ClickDebounceMS = 0
	}
}
