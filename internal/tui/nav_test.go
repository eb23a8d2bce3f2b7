package tui

import "testing"

type recordingScroller struct {
	calls  int
	smooth []bool
}

func (r *recordingScroller) ScrollToTop(smooth bool) {
	r.calls++
	r.smooth = append(r.smooth, smooth)
}

func TestNavigatorStartsOnListing(t *testing.T) {
	n := newNavigator(&recordingScroller{})
	if _, ok := n.Current().(listingView); !ok {
		t.Fatalf("initial view = %T, want listingView", n.Current())
	}
	if _, ok := n.ProfileID(); ok {
		t.Errorf("ProfileID reported a profile on the listing view")
	}
}

func TestViewProfileScrollsToTop(t *testing.T) {
	sc := &recordingScroller{}
	n := newNavigator(sc)

	n.ViewProfile("p1")

	id, ok := n.ProfileID()
	if !ok || id != "p1" {
		t.Fatalf("ProfileID = %q, %v, want %q, true", id, ok, "p1")
	}
	if sc.calls != 1 {
		t.Fatalf("ScrollToTop calls = %d, want 1", sc.calls)
	}
	if !sc.smooth[0] {
		t.Errorf("ScrollToTop called with smooth=false, want true")
	}
}

func TestCloseProfileReturnsToListing(t *testing.T) {
	n := newNavigator(&recordingScroller{})
	n.ViewProfile("p1")

	n.CloseProfile()

	if _, ok := n.Current().(listingView); !ok {
		t.Fatalf("view after close = %T, want listingView", n.Current())
	}
}

// Profile-to-profile switches need no intermediate listing state, and each
// entry resets the scroll position.
func TestProfileToProfileSwitch(t *testing.T) {
	sc := &recordingScroller{}
	n := newNavigator(sc)

	n.ViewProfile("p1")
	n.ViewProfile("p2")

	id, _ := n.ProfileID()
	if id != "p2" {
		t.Fatalf("ProfileID = %q, want %q", id, "p2")
	}
	if sc.calls != 2 {
		t.Errorf("ScrollToTop calls = %d, want 2", sc.calls)
	}
}
