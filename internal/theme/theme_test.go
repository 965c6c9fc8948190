package theme

import "testing"

func TestForSelectsStyleSet(t *testing.T) {
	if For(false) != Default() {
		t.Fatalf("expected light styles to be the default")
	}
	if For(true) == For(false) {
		t.Fatalf("expected distinct dark and light style sets")
	}
	if For(true).Title == nil || For(false).BackToTop == nil {
		t.Fatalf("expected styles to be populated")
	}
}

func TestGlamourStyle(t *testing.T) {
	if GlamourStyle(true) != "dark" || GlamourStyle(false) != "light" {
		t.Fatalf("unexpected glamour style names")
	}
}
