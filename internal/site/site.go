// Package site holds the static content catalog: the ordered set of sections
// and the media items each one presents. The catalog is built once at startup
// and never mutated afterwards.
package site

import (
	"errors"
	"fmt"
	"strings"
)

// MediaKind distinguishes looping image sequences from short muted videos.
type MediaKind int

const (
	KindImageSequence MediaKind = iota
	KindVideo
)

func (k MediaKind) String() string {
	switch k {
	case KindImageSequence:
		return "image-sequence"
	case KindVideo:
		return "video"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseMediaKind accepts the catalog spellings of a media kind.
func ParseMediaKind(s string) (MediaKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image-sequence", "image", "gif":
		return KindImageSequence, nil
	case "video", "mp4":
		return KindVideo, nil
	}
	return 0, fmt.Errorf("unknown media kind %q", s)
}

// MediaItem describes one illustrative clip and its caption.
type MediaItem struct {
	ID          string
	Kind        MediaKind
	SourceURI   string
	Title       string
	Description string
}

// Section is one mutually exclusive content panel.
type Section struct {
	ID      string
	Label   string
	Summary string
	Media   []MediaItem
}

var (
	ErrEmptyCatalog     = errors.New("catalog has no sections")
	ErrDuplicateSection = errors.New("duplicate section id")
	ErrDuplicateMedia   = errors.New("duplicate media id")
)

// Catalog is the immutable, ordered registry of sections.
type Catalog struct {
	sections []Section
	index    map[string]int
}

// NewCatalog validates and freezes the supplied sections.
func NewCatalog(sections []Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		sections: make([]Section, 0, len(sections)),
		index:    make(map[string]int, len(sections)),
	}
	for _, s := range sections {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return nil, fmt.Errorf("section %q: empty id", s.Label)
		}
		if _, ok := c.index[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSection, id)
		}
		seen := make(map[string]struct{}, len(s.Media))
		for _, item := range s.Media {
			if strings.TrimSpace(item.ID) == "" {
				return nil, fmt.Errorf("section %s: media %q has empty id", id, item.Title)
			}
			if _, ok := seen[item.ID]; ok {
				return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateMedia, id, item.ID)
			}
			seen[item.ID] = struct{}{}
		}
		s.ID = id
		if s.Label == "" {
			s.Label = id
		}
		s.Media = cloneMedia(s.Media)
		c.index[id] = len(c.sections)
		c.sections = append(c.sections, s)
	}
	return c, nil
}

// Sections returns a copy of the ordered sections.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		s.Media = cloneMedia(s.Media)
		out[i] = s
	}
	return out
}

// Find returns the section with the given id.
func (c *Catalog) Find(id string) (Section, bool) {
	idx, ok := c.index[id]
	if !ok {
		return Section{}, false
	}
	s := c.sections[idx]
	s.Media = cloneMedia(s.Media)
	return s, true
}

// Has reports whether id names a section.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// IDs returns section ids in display order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.sections))
	for i, s := range c.sections {
		ids[i] = s.ID
	}
	return ids
}

// Len returns the number of sections.
func (c *Catalog) Len() int {
	return len(c.sections)
}

func cloneMedia(items []MediaItem) []MediaItem {
	if len(items) == 0 {
		return nil
	}
	dup := make([]MediaItem, len(items))
	copy(dup, items)
	return dup
}
