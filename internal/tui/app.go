// Package tui is the LocalConnect terminal interface: a browsable,
// searchable roster of local service providers with per-provider profiles
// and simulated booking/review submission.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"localconnect/internal/config"
	"localconnect/internal/database/repository"
	"localconnect/internal/directory"
	"localconnect/internal/submit"
)

const appName = "LocalConnect"

// categoryChips are the quick-search professions shown while the search box
// is empty; picking one just sets the search text.
var categoryChips = []string{
	"Plumber", "Electrician", "Carpenter", "Painter",
	"Cleaner", "Landscaper", "Handyman", "HVAC",
}

// Repos groups the storage handles the TUI reads from.
type Repos struct {
	Providers *repository.ProviderRepo
	Reviews   *repository.ReviewRepo
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type rosterLoadedMsg struct {
	providers []repository.Provider
	err       error
}

type reviewsLoadedMsg struct {
	providerID string
	reviews    []repository.Review
	err        error
}

// Timer messages carry the generation they were scheduled under; a stale
// generation means the form was cancelled or superseded and the message
// must apply nothing.
type submitResolvedMsg struct{ gen int }

type submitAutoCloseMsg struct{ gen int }

type themeSavedMsg struct{ err error }

func resolveTimerCmd(gen int) tea.Cmd {
	return tea.Tick(submit.ResolveDelay, func(time.Time) tea.Msg {
		return submitResolvedMsg{gen: gen}
	})
}

func autoCloseTimerCmd(gen int) tea.Cmd {
	return tea.Tick(submit.AutoCloseDelay, func(time.Time) tea.Msg {
		return submitAutoCloseMsg{gen: gen}
	})
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

// App is the Bubble Tea model for the whole interface.
type App struct {
	ctx    context.Context
	cfg    config.Config
	repos  Repos
	engine *directory.Engine

	providers []repository.Provider // immutable startup snapshot
	locations []string
	reviews   map[string][]repository.Review

	params   directory.Params
	search   textinput.Model
	searchOn bool
	locIdx   int // 0 = any location, 1.. indexes into locations

	cursor   int
	topIndex int

	nav      *navigator
	viewport viewport.Model
	form     *form

	palette Palette
	styles  Styles
	keys    keyMap

	status string
	width  int
	height int
	ready  bool
}

func New(ctx context.Context, cfg config.Config, repos Repos) *App {
	search := textinput.New()
	search.Placeholder = "profession, name, or skill"
	search.Prompt = "Search: "
	search.CharLimit = 80

	a := &App{
		ctx:     ctx,
		cfg:     cfg,
		repos:   repos,
		engine:  directory.NewEngine(language.Make(cfg.UI.Locale)),
		reviews: map[string][]repository.Review{},
		search:  search,
		palette: PaletteByName(cfg.UI.Theme),
		keys:    newKeyMap(),
	}
	a.styles = NewStyles(a.palette)
	vp := viewport.New(80, 24)
	a.viewport = vp
	a.nav = newNavigator(&viewportScroller{vp: &a.viewport})
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadRoster(), textinput.Blink)
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func (a *App) loadRoster() tea.Cmd {
	return func() tea.Msg {
		providers, err := a.repos.Providers.Snapshot(a.ctx)
		return rosterLoadedMsg{providers: providers, err: err}
	}
}

func (a *App) loadReviews(providerID string) tea.Cmd {
	return func() tea.Msg {
		reviews, err := a.repos.Reviews.ListByProvider(a.ctx, providerID)
		return reviewsLoadedMsg{providerID: providerID, reviews: reviews, err: err}
	}
}

func (a *App) saveThemeCmd() tea.Cmd {
	cfg := a.cfg
	return func() tea.Msg {
		return themeSavedMsg{err: config.Save(cfg)}
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.viewport.Width = m.Width
		a.viewport.Height = m.Height - 3
		a.clampCursor()
		return a, nil

	case rosterLoadedMsg:
		if m.err != nil {
			a.status = "load roster: " + m.err.Error()
			return a, nil
		}
		a.providers = m.providers
		a.locations = directory.Locations(m.providers)
		a.ready = true
		return a, nil

	case reviewsLoadedMsg:
		if m.err != nil {
			a.status = "load reviews: " + m.err.Error()
			return a, nil
		}
		a.reviews[m.providerID] = m.reviews
		return a, nil

	case submitResolvedMsg:
		if a.form != nil && a.form.ctrl.Resolve(m.gen) {
			return a, autoCloseTimerCmd(a.form.ctrl.Gen())
		}
		return a, nil

	case submitAutoCloseMsg:
		if a.form != nil && a.form.ctrl.Finish(m.gen) {
			kind := a.form.kind
			a.form = nil
			if kind == formBooking {
				a.status = "Booking submitted."
			} else {
				a.status = "Review submitted."
			}
		}
		return a, nil

	case themeSavedMsg:
		if m.err != nil {
			a.status = "save theme: " + m.err.Error()
		}
		return a, nil

	case tea.KeyMsg:
		if a.form != nil {
			return a.handleFormKey(m)
		}
		if _, open := a.nav.ProfileID(); open {
			return a.handleProfileKey(m)
		}
		if a.searchOn {
			return a.handleSearchKey(m)
		}
		return a.handleListingKey(m)
	}
	return a, nil
}

// visible derives the current listing from the latest query parameters.
func (a *App) visible() []repository.Provider {
	return a.engine.DeriveView(a.providers, a.params)
}

// setParams replaces the query parameters wholesale and re-clamps the
// cursor against the re-derived listing.
func (a *App) setParams(p directory.Params) {
	a.params = p
	a.clampCursor()
}

func (a *App) clampCursor() {
	n := len(a.visible())
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	visible := a.visibleCards()
	if a.cursor < a.topIndex {
		a.topIndex = a.cursor
	} else if a.cursor >= a.topIndex+visible {
		a.topIndex = a.cursor - visible + 1
	}
	maxTop := n - visible
	if maxTop < 0 {
		maxTop = 0
	}
	if a.topIndex > maxTop {
		a.topIndex = maxTop
	}
	if a.topIndex < 0 {
		a.topIndex = 0
	}
}

// visibleCards is how many provider cards fit in the current window.
func (a *App) visibleCards() int {
	if a.height == 0 {
		return 4
	}
	chrome := 9 // header, search, chips, filter bar, footer, status
	per := 6    // card height incl. border
	n := (a.height - chrome) / per
	if n < 1 {
		n = 1
	}
	return n
}

// ---------------------------------------------------------------------------
// Key handlers
// ---------------------------------------------------------------------------

func (a *App) handleListingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.visible()
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "/":
		a.searchOn = true
		a.search.Focus()
		return a, textinput.Blink
	case "f":
		a.locIdx = (a.locIdx + 1) % (len(a.locations) + 1)
		a.setParams(directory.Params{
			Search:   a.params.Search,
			Location: a.selectedLocation(),
			Sort:     a.params.Sort,
		})
		return a, nil
	case "s":
		next := directory.SortNameAsc
		if a.params.Sort == directory.SortNameAsc {
			next = directory.SortRatingDesc
		}
		a.setParams(directory.Params{
			Search:   a.params.Search,
			Location: a.params.Location,
			Sort:     next,
		})
		return a, nil
	case "t":
		return a, a.toggleTheme()
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
			a.clampCursor()
		}
		return a, nil
	case "down", "j":
		if a.cursor < len(rows)-1 {
			a.cursor++
			a.clampCursor()
		}
		return a, nil
	case "enter":
		if a.cursor < len(rows) {
			return a, a.openProfile(rows[a.cursor].ID)
		}
		return a, nil
	}

	// category quick-search chips, shown only while the search is empty
	if a.params.Search == "" && len(m.String()) == 1 {
		c := m.String()[0]
		if c >= '1' && c <= '9' {
			idx := int(c - '1')
			if idx < len(categoryChips) {
				a.setSearch(categoryChips[idx])
			}
		}
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.searchOn = false
		a.search.Blur()
		return a, nil
	case "enter":
		a.searchOn = false
		a.search.Blur()
		return a, nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.setSearch(a.search.Value())
	return a, cmd
}

func (a *App) handleProfileKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "backspace":
		a.nav.CloseProfile()
		return a, nil
	case "t":
		return a, a.toggleTheme()
	case "b":
		if p := a.currentProvider(); p != nil {
			a.form = newBookingForm(*p)
		}
		return a, textinput.Blink
	case "r":
		if p := a.currentProvider(); p != nil {
			a.form = newReviewForm(*p)
		}
		return a, textinput.Blink
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(m)
	return a, cmd
}

// ---------------------------------------------------------------------------
// Transitions and helpers
// ---------------------------------------------------------------------------

// openProfile enters the profile view; the navigator scrolls the viewport
// to the top so the profile header is always visible.
func (a *App) openProfile(id string) tea.Cmd {
	a.nav.ViewProfile(id)
	a.status = ""
	if _, cached := a.reviews[id]; cached {
		return nil
	}
	return a.loadReviews(id)
}

func (a *App) setSearch(q string) {
	if a.search.Value() != q {
		a.search.SetValue(q)
	}
	a.setParams(directory.Params{
		Search:   q,
		Location: a.params.Location,
		Sort:     a.params.Sort,
	})
}

func (a *App) selectedLocation() string {
	if a.locIdx == 0 || a.locIdx > len(a.locations) {
		return ""
	}
	return a.locations[a.locIdx-1]
}

func (a *App) toggleTheme() tea.Cmd {
	if a.palette.Name == "dark" {
		a.palette = LightPalette()
	} else {
		a.palette = DarkPalette()
	}
	a.styles = NewStyles(a.palette)
	a.cfg.UI.Theme = a.palette.Name
	return a.saveThemeCmd()
}

func (a *App) currentProvider() *repository.Provider {
	id, ok := a.nav.ProfileID()
	if !ok {
		return nil
	}
	return a.providerByID(id)
}

func (a *App) providerByID(id string) *repository.Provider {
	for i := range a.providers {
		if a.providers[i].ID == id {
			return &a.providers[i]
		}
	}
	return nil
}
