package media

import (
	"math"
	"testing"

	"github.com/atomicstack/expi-showcase/internal/site"
)

type fakeElement struct {
	source  string
	playing bool
	pos     int

	sets, clears, plays, pauses, rewinds int
}

func (f *fakeElement) SetSource(uri string) { f.sets++; f.source = uri }
func (f *fakeElement) ClearSource()         { f.clears++; f.source = "" }
func (f *fakeElement) Play()                { f.plays++; f.playing = true }
func (f *fakeElement) Pause()               { f.pauses++; f.playing = false }
func (f *fakeElement) Rewind()              { f.rewinds++; f.pos = 0 }

var (
	video = site.MediaItem{ID: "clip", Kind: site.KindVideo, SourceURI: "/clip.mp4"}
	gif   = site.MediaItem{ID: "loop", Kind: site.KindImageSequence, SourceURI: "/loop.gif"}
)

func TestVideoRatioSequence(t *testing.T) {
	m := NewManager(DefaultThreshold)
	el := &fakeElement{}
	h := m.Register("home", video, el)

	ratios := []float64{0.0, 0.6, 0.3, 0.0}
	want := []Lifecycle{Dormant, Active, Dormant, Dormant}
	for i, r := range ratios {
		m.OnVisibilityChange(h, r)
		st, ok := m.State(h)
		if !ok {
			t.Fatalf("expected live handle")
		}
		if st.Lifecycle != want[i] {
			t.Fatalf("step %d ratio %.1f: expected %v, got %v", i, r, want[i], st.Lifecycle)
		}
	}
	if el.plays != 1 {
		t.Fatalf("expected playback started once, got %d", el.plays)
	}
	if el.pauses != 2 || el.rewinds != 2 {
		t.Fatalf("expected pause+reset twice, got pauses=%d rewinds=%d", el.pauses, el.rewinds)
	}
}

func TestImageSequenceSourceLifecycle(t *testing.T) {
	m := NewManager(DefaultThreshold)
	el := &fakeElement{}
	h := m.Register("home", gif, el)

	if el.source != "" {
		t.Fatalf("expected source withheld at registration")
	}
	m.OnVisibilityChange(h, 0.75)
	if el.source != "/loop.gif" {
		t.Fatalf("expected source assigned when visible, got %q", el.source)
	}
	m.OnVisibilityChange(h, 0.2)
	if el.source != "" {
		t.Fatalf("expected source cleared when leaving, got %q", el.source)
	}
	if el.plays != 0 || el.pauses != 0 {
		t.Fatalf("expected no playback calls for image sequences")
	}
}

func TestLevelTriggeredIdempotence(t *testing.T) {
	m := NewManager(DefaultThreshold)
	el := &fakeElement{}
	h := m.Register("home", video, el)

	if !m.OnVisibilityChange(h, 0.9) {
		t.Fatalf("expected first activation to apply")
	}
	for i := 0; i < 3; i++ {
		if m.OnVisibilityChange(h, 0.9) {
			t.Fatalf("expected repeated ratio to be a no-op")
		}
	}
	if m.OnVisibilityChange(h, 0.5) {
		t.Fatalf("expected ratio at threshold to stay active")
	}
	if el.plays != 1 {
		t.Fatalf("expected single play, got %d", el.plays)
	}
	st, _ := m.State(h)
	if st.Ratio != 0.5 || st.Visibility != Entering {
		t.Fatalf("expected latest ratio recorded, got %#v", st)
	}
}

func TestLifecycleMatchesLatestRatio(t *testing.T) {
	m := NewManager(DefaultThreshold)
	h := m.Register("home", video, &fakeElement{})
	seq := []float64{0.1, 0.9, 0.49, 0.5, 1, 0, 0.51, 0.3, 0.3, 0.8}
	for _, r := range seq {
		m.OnVisibilityChange(h, r)
		st, _ := m.State(h)
		active := st.Lifecycle == Active
		if active != (r >= 0.5) {
			t.Fatalf("ratio %.2f: expected active=%v, got %v", r, r >= 0.5, active)
		}
	}
}

func TestRatioClamping(t *testing.T) {
	m := NewManager(DefaultThreshold)
	h := m.Register("home", video, &fakeElement{})
	m.OnVisibilityChange(h, math.NaN())
	if st, _ := m.State(h); st.Ratio != 0 || st.Lifecycle != Dormant {
		t.Fatalf("expected NaN treated as 0, got %#v", st)
	}
	m.OnVisibilityChange(h, 3)
	if st, _ := m.State(h); st.Ratio != 1 || st.Lifecycle != Active {
		t.Fatalf("expected ratio clamped to 1, got %#v", st)
	}
}

func TestCustomThreshold(t *testing.T) {
	m := NewManager(0.25)
	h := m.Register("home", video, &fakeElement{})
	m.OnVisibilityChange(h, 0.3)
	if st, _ := m.State(h); st.Lifecycle != Active {
		t.Fatalf("expected 0.3 to activate with 0.25 threshold")
	}
	if NewManager(0).Threshold() != DefaultThreshold || NewManager(1.5).Threshold() != DefaultThreshold {
		t.Fatalf("expected invalid thresholds to fall back to default")
	}
}

func TestUnregisterStopsPlaybackAndIsIdempotent(t *testing.T) {
	m := NewManager(DefaultThreshold)
	el := &fakeElement{}
	h := m.Register("home", video, el)
	m.OnVisibilityChange(h, 1)
	if !el.playing {
		t.Fatalf("expected playing")
	}
	if !m.Unregister(h) {
		t.Fatalf("expected unregister to succeed")
	}
	if el.playing || el.rewinds != 1 {
		t.Fatalf("expected playback stopped and rewound synchronously")
	}
	if m.Unregister(h) {
		t.Fatalf("expected stale unregister to be a no-op")
	}
	if m.OnVisibilityChange(h, 1) {
		t.Fatalf("expected stale visibility change to be a no-op")
	}
	if el.plays != 1 {
		t.Fatalf("expected stale handle not to restart playback")
	}
	if m.Live() != 0 {
		t.Fatalf("expected zero live handles, got %d", m.Live())
	}
}

func TestUnregisterSection(t *testing.T) {
	m := NewManager(DefaultThreshold)
	a := m.Register("home", video, &fakeElement{})
	m.Register("home", gif, &fakeElement{})
	other := m.Register("chat", video, &fakeElement{})
	m.OnVisibilityChange(a, 1)

	if got := m.Handles("home"); len(got) != 2 || got[0] != a {
		t.Fatalf("expected home handles in registration order, got %v", got)
	}
	if n := m.UnregisterSection("home"); n != 2 {
		t.Fatalf("expected 2 released, got %d", n)
	}
	if m.LiveInSection("home") != 0 {
		t.Fatalf("expected no home handles left")
	}
	if _, ok := m.State(other); !ok || m.Live() != 1 {
		t.Fatalf("expected chat handle untouched")
	}
	if n := m.Close(); n != 1 || m.Live() != 0 {
		t.Fatalf("expected Close to release remaining handle, got %d/%d", n, m.Live())
	}
}

func TestHandlesAreUnique(t *testing.T) {
	m := NewManager(DefaultThreshold)
	seen := map[Handle]bool{}
	for i := 0; i < 50; i++ {
		h := m.Register("home", gif, &fakeElement{})
		if seen[h] {
			t.Fatalf("duplicate handle %s", h)
		}
		seen[h] = true
	}
	if item, ok := m.Item(m.Handles("home")[0]); !ok || item.ID != "loop" {
		t.Fatalf("expected item lookup by handle, got %#v", item)
	}
}
