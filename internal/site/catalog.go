package site

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type catalogFile struct {
	Sections []sectionFile `toml:"section"`
}

type sectionFile struct {
	ID      string      `toml:"id"`
	Label   string      `toml:"label"`
	Summary string      `toml:"summary"`
	Media   []mediaFile `toml:"media"`
}

type mediaFile struct {
	ID          string `toml:"id"`
	Kind        string `toml:"kind"`
	Source      string `toml:"source"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// LoadCatalog reads a TOML catalog from path. An empty path yields the
// built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes TOML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	sections := make([]Section, 0, len(file.Sections))
	for _, sf := range file.Sections {
		s := Section{ID: sf.ID, Label: sf.Label, Summary: sf.Summary}
		for _, mf := range sf.Media {
			kind, err := ParseMediaKind(mf.Kind)
			if err != nil {
				return nil, fmt.Errorf("section %s media %s: %w", sf.ID, mf.ID, err)
			}
			s.Media = append(s.Media, MediaItem{
				ID:          mf.ID,
				Kind:        kind,
				SourceURI:   mf.Source,
				Title:       mf.Title,
				Description: mf.Description,
			})
		}
		sections = append(sections, s)
	}
	return NewCatalog(sections)
}

// DefaultCatalog returns the built-in Expi Analyzer walkthrough.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultSections())
	if err != nil {
		panic(fmt.Sprintf("site: invalid built-in catalog: %v", err))
	}
	return c
}

func defaultSections() []Section {
	return []Section{
		{
			ID:    "home",
			Label: "Home",
			Summary: "# Expi Analyzer\n\n" +
				"Welcome to the **Expi Analyzer** walkthrough. Each panel below shows one " +
				"step of an analysis session, from entering your name to reading the dashboard.",
			Media: []MediaItem{
				{ID: "name", Kind: KindImageSequence, SourceURI: "/gif1.gif", Title: "Entering your name",
					Description: "The session starts by asking for your name so feedback can be personalised throughout the analysis."},
				{ID: "overview", Kind: KindVideo, SourceURI: "/videos/overview.mp4", Title: "Product tour",
					Description: "A short tour of the panels you will visit during an analysis."},
			},
		},
		{
			ID:    "chat",
			Label: "Chat",
			Summary: "## Chat\n\n" +
				"Answer a guided conversation. The analyzer adapts its follow-up questions to what you write.",
			Media: []MediaItem{
				{ID: "conversation", Kind: KindVideo, SourceURI: "/videos/chat.mp4", Title: "Guided conversation",
					Description: "Questions arrive one at a time and your answers are analysed as you type."},
				{ID: "typing", Kind: KindImageSequence, SourceURI: "/gif2.gif", Title: "Live feedback",
					Description: "Tone and clarity hints appear next to the message box."},
			},
		},
		{
			ID:    "voice",
			Label: "Voice",
			Summary: "## Voice\n\n" +
				"Record a short answer. Pace, pauses and intonation are measured from the recording.",
			Media: []MediaItem{
				{ID: "record", Kind: KindVideo, SourceURI: "/videos/voice.mp4", Title: "Recording an answer",
					Description: "Press record, speak for up to a minute, and stop when you are done."},
				{ID: "waveform", Kind: KindImageSequence, SourceURI: "/gif3.gif", Title: "Waveform review",
					Description: "The waveform highlights long pauses and filler words."},
			},
		},
		{
			ID:    "express",
			Label: "Express",
			Summary: "## Express\n\n" +
				"Facial expression analysis runs on a short muted clip captured from your camera.",
			Media: []MediaItem{
				{ID: "capture", Kind: KindVideo, SourceURI: "/videos/express.mp4", Title: "Expression capture",
					Description: "A ten second clip is enough to estimate engagement and expressiveness."},
			},
		},
		{
			ID:    "dashboard",
			Label: "Dashboard",
			Summary: "## Dashboard\n\n" +
				"All results come together in one place, with per-step scores and suggestions.",
			Media: []MediaItem{
				{ID: "scores", Kind: KindImageSequence, SourceURI: "/gif4.gif", Title: "Scores at a glance",
					Description: "Each step contributes a score; hover a card to see how it was computed."},
				{ID: "report", Kind: KindVideo, SourceURI: "/videos/dashboard.mp4", Title: "Exporting the report",
					Description: "Download a summary to share with a coach or keep for later."},
			},
		},
	}
}
