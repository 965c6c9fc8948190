// Package kv provides the small key-value backends behind persisted
// preferences. Every backend stores strings under string keys.
package kv

import (
	"fmt"
	"strings"
)

// Store is a persisted string key-value store. Get reports ok=false for
// absent keys; err is reserved for backends that could not be read.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Kind names a backend implementation.
type Kind string

const (
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// ParseKind normalises a backend name.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindFile, "":
		return KindFile, nil
	case KindSQLite:
		return KindSQLite, nil
	case KindMemory:
		return KindMemory, nil
	}
	return "", fmt.Errorf("unknown store kind %q (want file, sqlite or memory)", s)
}

// Open constructs the backend of the given kind rooted at path.
func Open(kind Kind, path string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindSQLite:
		return OpenSQLite(path)
	case KindFile, "":
		return NewFile(path), nil
	}
	return nil, fmt.Errorf("unknown store kind %q", kind)
}

// Close releases backend resources when the store holds any.
func Close(s Store) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Memory is a process-local Store.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}
