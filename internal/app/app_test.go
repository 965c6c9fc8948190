package app

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/expi-showcase/internal/kv"
	"github.com/atomicstack/expi-showcase/internal/nav"
	"github.com/atomicstack/expi-showcase/internal/testutil"
)

func TestBuildWithDefaults(t *testing.T) {
	testutil.QuietLogs(t)
	model, cleanup, err := build(Config{
		Width:      120,
		Height:     30,
		Breakpoint: 100,
		Threshold:  0.5,
		StoreKind:  kv.KindSQLite,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.db"),
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer cleanup()
	if model.View() == "" {
		t.Fatalf("expected initial view")
	}
}

func TestBuildFromCatalogFile(t *testing.T) {
	testutil.QuietLogs(t)
	model, cleanup, err := build(Config{
		Width:          120,
		Height:         30,
		Breakpoint:     100,
		Threshold:      0.5,
		InitialSection: "outro",
		ContentPath:    testutil.Fixture(t, "catalog.toml"),
		StoreKind:      kv.KindMemory,
	})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer cleanup()
	view := model.View()
	if !strings.Contains(view, "Closing loop") {
		t.Fatalf("expected outro clip in view, got:\n%s", view)
	}
}

func TestBuildRejectsUnknownSection(t *testing.T) {
	testutil.QuietLogs(t)
	_, _, err := build(Config{InitialSection: "pricing", StoreKind: kv.KindMemory})
	if !errors.Is(err, nav.ErrUnknownSection) || !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrUnknownSection as invalid config, got %v", err)
	}
}

func TestBuildRejectsMissingCatalog(t *testing.T) {
	testutil.QuietLogs(t)
	_, _, err := build(Config{ContentPath: filepath.Join(t.TempDir(), "missing.toml"), StoreKind: kv.KindMemory})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected catalog error as invalid config, got %v", err)
	}
}

func TestOpenStoreFallsBackToMemory(t *testing.T) {
	logPath := testutil.QuietLogs(t)
	store := openStore(kv.Kind("bogus"), "")
	if _, ok := store.(*kv.Memory); !ok {
		t.Fatalf("expected memory fallback, got %T", store)
	}
	if testutil.ReadLog(t, logPath) == "" {
		t.Fatalf("expected fallback to be logged")
	}
}
