// Package prefs owns the single persisted user preference: the dark theme
// flag. The backing store is consulted once at Load; afterwards the
// in-memory value is authoritative and every Toggle writes through.
package prefs

import (
	"strconv"

	"github.com/atomicstack/expi-showcase/internal/kv"
	"github.com/atomicstack/expi-showcase/internal/logging"
	"github.com/atomicstack/expi-showcase/internal/logging/events"
)

// ThemeKey is the store key holding the dark flag.
const ThemeKey = "theme.dark"

// Theme is the persisted preference value.
type Theme struct {
	Dark bool
}

// Store is a typed wrapper over a kv.Store.
type Store struct {
	backend kv.Store
	current Theme
}

// New wraps backend. A nil backend keeps the preference in memory only.
func New(backend kv.Store) *Store {
	return &Store{backend: backend}
}

// Load reads the persisted flag. Absent, malformed or unreadable values load
// as the light theme.
func (s *Store) Load() Theme {
	s.current = Theme{}
	if s.backend == nil {
		events.Theme.Load(false, false)
		return s.current
	}
	raw, ok, err := s.backend.Get(ThemeKey)
	if err != nil {
		logging.Warn("theme preference unreadable: %v", err)
		events.Theme.PersistFailed("get", err)
		events.Theme.Load(false, false)
		return s.current
	}
	if ok {
		dark, perr := strconv.ParseBool(raw)
		if perr != nil {
			logging.Warn("theme preference malformed (%q): %v", raw, perr)
			ok = false
		} else {
			s.current.Dark = dark
		}
	}
	events.Theme.Load(s.current.Dark, ok)
	return s.current
}

// Current returns the in-memory preference.
func (s *Store) Current() Theme {
	return s.current
}

// Toggle flips the theme and writes it back. Write failures are logged and
// do not affect the returned value.
func (s *Store) Toggle() Theme {
	s.current.Dark = !s.current.Dark
	events.Theme.Toggle(s.current.Dark)
	if s.backend != nil {
		if err := s.backend.Set(ThemeKey, strconv.FormatBool(s.current.Dark)); err != nil {
			logging.Warn("theme preference not persisted: %v", err)
			events.Theme.PersistFailed("set", err)
		}
	}
	return s.current
}
