package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/busedmrly/vitrin/internal/config"
	"github.com/busedmrly/vitrin/internal/domain"
	"github.com/busedmrly/vitrin/internal/library"
	"github.com/busedmrly/vitrin/internal/log"
	"github.com/busedmrly/vitrin/internal/source"
	"github.com/busedmrly/vitrin/internal/store"
	"github.com/busedmrly/vitrin/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var catalogPath string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&catalogPath, "catalog", "", "catalog URL or file path (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("vitrin %s\n", Version)
		return
	}

	if err := run(catalogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(catalogPath string) error {
	// The UI needs a real terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("vitrin requires an interactive terminal")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	// A catalog override becomes the new configured source, so a plain
	// `vitrin` next time keeps using it. A failed save only logs.
	if catalogPath != "" && catalogPath != cfg.Catalog.Source {
		cfg.Catalog.Source = catalogPath
		if err := config.SaveConfig(cfg); err != nil {
			logger.Warn("failed to persist catalog source", "error", err)
		}
	}

	logger.Info("starting vitrin", "version", Version, "catalog", cfg.Catalog.Source)

	// Open the preference store; a broken store degrades to memory-only
	prefs, err := store.NewPreferenceStore(cfg.Data.Dir)
	if err != nil {
		logger.Error("failed to open preference store, continuing without persistence", "error", err)
		prefs, _ = store.NewPreferenceStore("")
	}
	defer prefs.Close()

	// Catalog source and the library service on top of it
	fetchTimeout := time.Duration(cfg.Catalog.Timeout) * time.Second
	src := source.New(cfg.Catalog.Source, fetchTimeout, logger)
	svc := library.NewService(src, prefs, domain.ViewMode(cfg.UI.DefaultView), logger)

	// Create TUI model
	debounce := time.Duration(cfg.UI.SearchDebounce) * time.Millisecond
	model := tui.NewModel(svc, debounce, fetchTimeout)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
