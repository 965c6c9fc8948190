package ui

import (
	"github.com/atomicstack/expi-showcase/internal/media"
	"github.com/atomicstack/expi-showcase/internal/site"
)

// clipFrames is the length of one animation loop in ticks.
const clipFrames = 12

// clip is the terminal stand-in for a media element. Image sequences show
// frames only while a source is assigned; videos advance only while playing.
type clip struct {
	section  string
	item     site.MediaItem
	source   string
	playing  bool
	position int
}

func (c *clip) SetSource(uri string) {
	c.source = uri
	c.position = 0
}

func (c *clip) ClearSource() {
	c.source = ""
	c.position = 0
}

func (c *clip) Play() {
	c.playing = true
}

func (c *clip) Pause() {
	c.playing = false
}

func (c *clip) Rewind() {
	c.position = 0
}

func (c *clip) running() bool {
	if c.item.Kind == site.KindVideo {
		return c.playing
	}
	return c.source != ""
}

func (c *clip) advance() {
	if !c.running() {
		return
	}
	c.position = (c.position + 1) % clipFrames
}

// Clips owns the element surfaces handed to the media manager.
type Clips struct {
	byKey map[string]*clip
}

// NewClips returns an empty surface registry.
func NewClips() *Clips {
	return &Clips{byKey: make(map[string]*clip)}
}

func clipKey(section, itemID string) string {
	return section + "/" + itemID
}

// Factory builds the surface for item. Its signature matches the
// presenter's element factory.
func (c *Clips) Factory(section string, item site.MediaItem) media.Element {
	cl := &clip{section: section, item: item}
	c.byKey[clipKey(section, item.ID)] = cl
	return cl
}

func (c *Clips) lookup(section, itemID string) *clip {
	if c == nil {
		return nil
	}
	return c.byKey[clipKey(section, itemID)]
}

// prune drops surfaces that belong to sections other than keep.
func (c *Clips) prune(keep string) {
	if c == nil {
		return
	}
	for key, cl := range c.byKey {
		if cl.section != keep {
			delete(c.byKey, key)
		}
	}
}

func (c *Clips) advance() {
	if c == nil {
		return
	}
	for _, cl := range c.byKey {
		cl.advance()
	}
}

func (c *Clips) len() int {
	if c == nil {
		return 0
	}
	return len(c.byKey)
}
