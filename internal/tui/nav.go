package tui

import "github.com/charmbracelet/bubbles/viewport"

// ---------------------------------------------------------------------------
// View-navigation state machine: listing ⇄ profile
// ---------------------------------------------------------------------------

// viewState is a closed sum: exactly one of listingView or profileView is
// active at a time.
type viewState interface{ isViewState() }

type listingView struct{}

type profileView struct{ providerID string }

func (listingView) isViewState() {}
func (profileView) isViewState() {}

// scroller is the viewport side effect required on entering a profile: the
// profile header must be visible regardless of prior scroll offset.
type scroller interface {
	ScrollToTop(smooth bool)
}

// navigator owns the view state. It is a mode switch, not a stack: closing
// a profile always returns to the listing, never to a previous profile, and
// profile-to-profile switches are legal without an intermediate listing
// state.
type navigator struct {
	current viewState
	scroll  scroller
}

func newNavigator(s scroller) *navigator {
	return &navigator{current: listingView{}, scroll: s}
}

func (n *navigator) Current() viewState { return n.current }

// ProfileID returns the open profile's provider id, if any.
func (n *navigator) ProfileID() (string, bool) {
	if p, ok := n.current.(profileView); ok {
		return p.providerID, true
	}
	return "", false
}

// ViewProfile enters (or re-enters) the profile view and scrolls to the top.
func (n *navigator) ViewProfile(id string) {
	n.current = profileView{providerID: id}
	n.scroll.ScrollToTop(true)
}

// CloseProfile returns to the listing.
func (n *navigator) CloseProfile() {
	n.current = listingView{}
}

// viewportScroller adapts a bubbles viewport to the scroller contract. A
// terminal viewport repositions instantly; the smooth flag is part of the
// contract for scroll backends that can animate.
type viewportScroller struct {
	vp *viewport.Model
}

func (s *viewportScroller) ScrollToTop(smooth bool) {
	_ = smooth
	s.vp.GotoTop()
}
