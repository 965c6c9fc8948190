package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	if _, ok, err := s.Get("theme.dark"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}
	if err := s.Set("theme.dark", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := s.Get("theme.dark")
	if err != nil || !ok || v != "true" {
		t.Fatalf("expected true, got %q ok=%v err=%v", v, ok, err)
	}
	if err := s.Set("theme.dark", "false"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if v, _, _ := s.Get("theme.dark"); v != "false" {
		t.Fatalf("expected overwrite to stick, got %q", v)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	exerciseStore(t, NewFile(path))

	reopened := NewFile(path)
	if v, ok, err := reopened.Get("theme.dark"); err != nil || !ok || v != "false" {
		t.Fatalf("expected value to persist across instances, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestFileStoreCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("values = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFile(path)
	if _, _, err := s.Get("theme.dark"); err == nil {
		t.Fatalf("expected read error for corrupt document")
	}
	if err := s.Set("theme.dark", "true"); err != nil {
		t.Fatalf("expected Set to replace corrupt document, got %v", err)
	}
	if v, ok, err := s.Get("theme.dark"); err != nil || !ok || v != "true" {
		t.Fatalf("expected recovered value, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	exerciseStore(t, s)
	if err := Close(s); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	again, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer again.Close()
	if v, ok, err := again.Get("theme.dark"); err != nil || !ok || v != "false" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestOpenByKind(t *testing.T) {
	dir := t.TempDir()
	for i, name := range []string{"file", "sqlite", "memory", ""} {
		kind, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", name, err)
		}
		s, err := Open(kind, filepath.Join(dir, fmt.Sprintf("store-%d", i)))
		if err != nil {
			t.Fatalf("Open(%q) failed: %v", kind, err)
		}
		exerciseStore(t, s)
		Close(s)
	}
	if _, err := ParseKind("redis"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
