package app

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davepk/tabdeck/internal/config"
	"github.com/davepk/tabdeck/internal/prefs"
	"github.com/davepk/tabdeck/internal/ui"
)

// Options configure the tabdeck application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tabdeck/prefs.toml
}

// Run boots the tabdeck TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)
	if userPrefs.Alignment != "" {
		cfg.Alignment = userPrefs.Alignment
	}

	// Controller warnings go to a file when debugging; stderr is owned by
	// the terminal UI.
	var logf func(format string, args ...any)
	if os.Getenv("TABDECK_DEBUG") != "" {
		f, err := tea.LogToFile("tabdeck.log", "tabdeck")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		logf = log.Printf
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: prefsPath,
		Logf:      logf,
	})
}
