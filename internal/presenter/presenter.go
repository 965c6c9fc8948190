// Package presenter composes the controller components into the single
// instance the renderer talks to. It is constructed once at startup and
// passed by reference; nothing here lives in package-level state.
package presenter

import (
	"fmt"

	"github.com/atomicstack/expi-showcase/internal/device"
	"github.com/atomicstack/expi-showcase/internal/logging/events"
	"github.com/atomicstack/expi-showcase/internal/media"
	"github.com/atomicstack/expi-showcase/internal/nav"
	"github.com/atomicstack/expi-showcase/internal/overlay"
	"github.com/atomicstack/expi-showcase/internal/prefs"
	"github.com/atomicstack/expi-showcase/internal/scroll"
	"github.com/atomicstack/expi-showcase/internal/site"
	"github.com/atomicstack/expi-showcase/internal/subscribe"
)

// ElementFactory builds the renderer surface for a media item about to be
// mounted. It may return nil when the renderer draws nothing for the item.
type ElementFactory func(section string, item site.MediaItem) media.Element

// Options tunes the controller components.
type Options struct {
	InitialSection  string
	Breakpoint      int
	Threshold       float64
	ScrollThreshold int
}

// Presenter is the presentation state controller.
type Presenter struct {
	nav     *nav.Navigator
	media   *media.Manager
	device  *device.Classifier
	scroll  *scroll.Monitor
	overlay *overlay.Controller
	prefs   *prefs.Store
	factory ElementFactory

	menuOpen bool
	navTok   subscribe.Token
	devTok   subscribe.Token
	closed   bool
}

// New builds the controller, loads the theme preference and mounts the
// initial section's media.
func New(catalog *site.Catalog, store *prefs.Store, factory ElementFactory, opts Options) (*Presenter, error) {
	navigator, err := nav.New(catalog, opts.InitialSection)
	if err != nil {
		return nil, fmt.Errorf("navigation: %w", err)
	}
	if store == nil {
		store = prefs.New(nil)
	}
	p := &Presenter{
		nav:     navigator,
		media:   media.NewManager(opts.Threshold),
		device:  device.NewClassifier(opts.Breakpoint),
		scroll:  scroll.NewMonitor(opts.ScrollThreshold),
		overlay: overlay.New(),
		prefs:   store,
		factory: factory,
	}
	p.prefs.Load()
	p.navTok = p.nav.Subscribe(p.onTransition)
	p.devTok = p.device.Subscribe(p.onDeviceClass)
	p.mount(p.nav.Current())
	return p, nil
}

func (p *Presenter) onTransition(tr nav.Transition) {
	released := p.media.UnregisterSection(tr.From)
	events.Section.Unmount(tr.From, released)
	p.mount(tr.To)
	p.setMenu(false)
}

func (p *Presenter) onDeviceClass(c device.Class) {
	if c == device.Regular {
		p.setMenu(false)
	}
}

func (p *Presenter) mount(sectionID string) {
	section := p.nav.Section()
	if section.ID != sectionID {
		return
	}
	for _, item := range section.Media {
		var el media.Element
		if p.factory != nil {
			el = p.factory(sectionID, item)
		}
		p.media.Register(sectionID, item, el)
	}
	events.Section.Mount(sectionID, len(section.Media))
}

// Activate switches sections. Media of the outgoing section is released and
// the incoming section's media is registered before Activate returns.
func (p *Presenter) Activate(id string) bool {
	return p.nav.Activate(id)
}

// Step cycles through sections.
func (p *Presenter) Step(delta int) bool {
	return p.nav.Step(delta)
}

func (p *Presenter) CurrentSection() string {
	return p.nav.Current()
}

func (p *Presenter) Section() site.Section {
	return p.nav.Section()
}

func (p *Presenter) Sections() []nav.Entry {
	return p.nav.List()
}

// Handles returns the active section's media handles in display order.
func (p *Presenter) Handles() []media.Handle {
	return p.media.Handles(p.nav.Current())
}

func (p *Presenter) MediaState(h media.Handle) (media.State, bool) {
	return p.media.State(h)
}

func (p *Presenter) MediaItem(h media.Handle) (site.MediaItem, bool) {
	return p.media.Item(h)
}

// Visibility forwards an intersection signal for h.
func (p *Presenter) Visibility(h media.Handle, ratio float64) bool {
	return p.media.OnVisibilityChange(h, ratio)
}

// LiveHandles returns the number of mounted media handles.
func (p *Presenter) LiveHandles() int {
	return p.media.Live()
}

// LiveInSection returns the number of mounted handles owned by section.
func (p *Presenter) LiveInSection(section string) int {
	return p.media.LiveInSection(section)
}

// Threshold returns the media activation ratio.
func (p *Presenter) Threshold() float64 {
	return p.media.Threshold()
}

// Resize records a width signal.
func (p *Presenter) Resize(width int) device.Class {
	return p.device.Resize(width)
}

func (p *Presenter) DeviceClass() device.Class {
	return p.device.Current()
}

// ToggleMenu opens or closes the collapsible menu. The menu only exists in
// the compact class; in the regular class it stays closed.
func (p *Presenter) ToggleMenu() bool {
	if p.device.Current() != device.Compact {
		p.setMenu(false)
		return false
	}
	p.setMenu(!p.menuOpen)
	return p.menuOpen
}

func (p *Presenter) MenuOpen() bool {
	return p.menuOpen
}

func (p *Presenter) CloseMenu() {
	p.setMenu(false)
}

func (p *Presenter) setMenu(open bool) {
	if p.menuOpen == open {
		return
	}
	p.menuOpen = open
	events.Section.Menu(open)
}

// Scroll records a scroll signal.
func (p *Presenter) Scroll(m scroll.Metrics) scroll.State {
	return p.scroll.Update(m)
}

// BackToTopVisible reports whether the back-to-top affordance is shown.
func (p *Presenter) BackToTopVisible() bool {
	return p.scroll.State().NearBottom
}

func (p *Presenter) Bouncing() bool {
	return p.scroll.Bouncing()
}

// ScrollToTop records the back-to-top action.
func (p *Presenter) ScrollToTop() {
	p.scroll.ScrollToTop()
}

func (p *Presenter) ScrollMetrics() scroll.Metrics {
	return p.scroll.Metrics()
}

// OpenOverlay enlarges the item mounted under h.
func (p *Presenter) OpenOverlay(h media.Handle) bool {
	item, ok := p.media.Item(h)
	if !ok {
		return false
	}
	p.overlay.Open(item)
	return true
}

func (p *Presenter) CloseOverlay() {
	p.overlay.Close()
}

func (p *Presenter) Overlay() (site.MediaItem, bool) {
	return p.overlay.Current()
}

func (p *Presenter) Theme() prefs.Theme {
	return p.prefs.Current()
}

func (p *Presenter) ToggleTheme() prefs.Theme {
	return p.prefs.Toggle()
}

// Close releases every media handle and subscription. It is safe to call
// more than once.
func (p *Presenter) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.nav.Unsubscribe(p.navTok)
	p.device.Unsubscribe(p.devTok)
	p.media.Close()
	p.nav.Close()
	p.device.Close()
	p.scroll.Close()
	events.App.Stop(p.media.Live())
}
