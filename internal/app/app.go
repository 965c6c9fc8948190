package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/expi-showcase/internal/kv"
	"github.com/atomicstack/expi-showcase/internal/logging"
	"github.com/atomicstack/expi-showcase/internal/logging/events"
	"github.com/atomicstack/expi-showcase/internal/prefs"
	"github.com/atomicstack/expi-showcase/internal/presenter"
	"github.com/atomicstack/expi-showcase/internal/scroll"
	"github.com/atomicstack/expi-showcase/internal/site"
	"github.com/atomicstack/expi-showcase/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width          int
	Height         int
	ShowFooter     bool
	Verbose        bool
	InitialSection string
	Breakpoint     int
	Threshold      float64
	ContentPath    string
	PrefsPath      string
	StoreKind      kv.Kind
}

// ErrInvalidConfig marks startup failures caused by user-supplied options,
// such as an unreadable catalog or an unknown initial section.
var ErrInvalidConfig = errors.New("invalid configuration")

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, cleanup, err := build(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// build constructs the controller and renderer. cleanup releases media
// handles and the preference backend.
func build(cfg Config) (*ui.Model, func(), error) {
	catalog, err := site.LoadCatalog(cfg.ContentPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: load catalog: %w", ErrInvalidConfig, err)
	}
	store := openStore(cfg.StoreKind, cfg.PrefsPath)
	clips := ui.NewClips()
	p, err := presenter.New(catalog, prefs.New(store), clips.Factory, presenter.Options{
		InitialSection:  cfg.InitialSection,
		Breakpoint:      cfg.Breakpoint,
		Threshold:       cfg.Threshold,
		ScrollThreshold: scroll.LineThreshold,
	})
	if err != nil {
		closeStore(store)
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	cleanup := func() {
		p.Close()
		closeStore(store)
	}
	return ui.NewModel(p, clips, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose), cleanup, nil
}

// openStore opens the configured backend. A backend that cannot be opened
// is replaced by an in-memory one so the theme still toggles for the session.
func openStore(kind kv.Kind, path string) kv.Store {
	store, err := kv.Open(kind, path)
	if err != nil {
		logging.Error(fmt.Errorf("open %s preference store: %w", kind, err))
		events.App.StoreFallback(string(kind), path, err)
		return kv.NewMemory()
	}
	return store
}

func closeStore(store kv.Store) {
	if err := kv.Close(store); err != nil {
		logging.Error(fmt.Errorf("close preference store: %w", err))
	}
}
