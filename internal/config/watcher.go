package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// watchDebounce coalesces the burst of fsnotify events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// Watch reloads the configuration whenever the config file changes, invoking
// the registered callbacks. It blocks until ctx is cancelled.
func (m *Manager) Watch(ctx context.Context, log zerolog.Logger) error {
	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return errors.New("config: already watching")
	}
	m.watching = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.watching = false
		m.mu.Unlock()
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors replace files on save and
	// a file watch would go stale after the first write.
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := watcher.Add(configDir); err != nil {
		return fmt.Errorf("config: watch %s: %w", configDir, err)
	}

	var pending *time.Timer
	reloads := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isConfigEvent(event) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, func() {
				select {
				case reloads <- struct{}{}:
				default:
				}
			})
		case <-reloads:
			if err := m.reload(); err != nil {
				log.Warn().Err(err).Msg("config reload failed, keeping previous configuration")
				continue
			}
			log.Info().Msg("configuration reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("config watcher error")
		}
	}
}

func isConfigEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	name := filepath.Base(event.Name)
	return strings.HasPrefix(name, "config.")
}
