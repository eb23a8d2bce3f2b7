package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"localconnect/internal/database/repository"
	"localconnect/internal/directory"
	"localconnect/internal/submit"
)

func (a *App) View() string {
	if !a.ready {
		return a.styles.Muted.Render("Loading service providers...")
	}

	var body string
	switch a.nav.Current().(type) {
	case profileView:
		body = a.renderProfileView()
	default:
		body = a.renderListing()
	}

	if a.form != nil {
		body += "\n\n" + a.renderForm()
	}
	return body
}

// ---------------------------------------------------------------------------
// Listing view
// ---------------------------------------------------------------------------

func (a *App) renderListing() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(appName))
	b.WriteString(a.styles.Muted.Render("  trusted local service providers"))
	b.WriteString("\n\n")
	b.WriteString(a.search.View())
	b.WriteString("\n")

	if a.params.Search == "" {
		b.WriteString(a.renderChips())
		b.WriteString("\n")
	}

	rows := a.visible()
	b.WriteString(a.renderFilterBar(len(rows)))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(a.styles.Header.Render("No providers found") + "\n")
		b.WriteString(a.styles.Subtext.Render("Try adjusting your search or filters") + "\n")
		if hint := directory.Suggest(a.providers, a.params.Search); hint != "" {
			b.WriteString(a.styles.Accent.Render(fmt.Sprintf("Did you mean %q?", hint)) + "\n")
		}
	} else {
		end := a.topIndex + a.visibleCards()
		if end > len(rows) {
			end = len(rows)
		}
		for i := a.topIndex; i < end; i++ {
			b.WriteString(a.renderCard(rows[i], i == a.cursor))
			b.WriteString("\n")
		}
		if len(rows) > end-a.topIndex {
			b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  %d-%d of %d", a.topIndex+1, end, len(rows))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(a.renderFooter(a.keys.listingHelp()))
	if a.status != "" {
		b.WriteString("\n" + a.styles.Subtext.Render(a.status))
	}
	return b.String()
}

func (a *App) renderChips() string {
	parts := make([]string, 0, len(categoryChips))
	for i, c := range categoryChips {
		parts = append(parts, a.styles.Chip.Render(fmt.Sprintf("%d %s", i+1, c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

func (a *App) renderFilterBar(count int) string {
	loc := a.selectedLocation()
	if loc == "" {
		loc = "All"
	}
	sortLabel := "rating"
	if a.params.Sort == directory.SortNameAsc {
		sortLabel = "name"
	}
	noun := "providers"
	if count == 1 {
		noun = "provider"
	}
	return a.styles.Subtext.Render(
		fmt.Sprintf("Location: %s   Sort: %s   %d %s", loc, sortLabel, count, noun))
}

func (a *App) renderCard(p repository.Provider, selected bool) string {
	style := a.styles.Card
	if selected {
		style = a.styles.CardActive
	}

	header := a.styles.Header.Render(p.Name) + "  " +
		a.styles.Star.Render(fmt.Sprintf("★ %.1f", p.Rating))
	meta := a.styles.Accent.Render(p.Profession) + a.styles.Subtext.Render(
		fmt.Sprintf("  %s · %d yrs experience", p.Location, p.ExperienceYears))

	skills := p.Skills
	extra := ""
	if len(skills) > 3 {
		extra = fmt.Sprintf("  +%d more", len(skills)-3)
		skills = skills[:3]
	}
	skillLine := a.styles.Muted.Render(strings.Join(skills, " · ") + extra)

	width := a.width - 4
	if width < 40 {
		width = 40
	}
	return style.Width(width).Render(header + "\n" + meta + "\n" + skillLine)
}

// ---------------------------------------------------------------------------
// Profile view
// ---------------------------------------------------------------------------

func (a *App) renderProfileView() string {
	a.viewport.SetContent(a.renderProfileContent())
	footer := a.renderFooter(a.keys.profileHelp())
	out := a.viewport.View() + "\n" + footer
	if a.status != "" {
		out += "\n" + a.styles.Subtext.Render(a.status)
	}
	return out
}

func (a *App) renderProfileContent() string {
	p := a.currentProvider()
	if p == nil {
		return a.styles.Error.Render("Provider not found.")
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render(p.Name) + "\n")
	b.WriteString(a.styles.Accent.Render(p.Profession) + "  " +
		a.styles.Star.Render(fmt.Sprintf("★ %.1f", p.Rating)) + "\n\n")

	b.WriteString(a.styles.Header.Render("Contact") + "\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", a.styles.Subtext.Render("Phone:"), p.Phone))
	if p.Email != nil {
		b.WriteString(fmt.Sprintf("  %s  %s\n", a.styles.Subtext.Render("Email:"), *p.Email))
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n\n", a.styles.Subtext.Render("Area: "), p.Location))

	b.WriteString(a.styles.Header.Render("About") + "\n")
	b.WriteString("  " + p.Description + "\n")
	b.WriteString(a.styles.Subtext.Render(
		fmt.Sprintf("  %d years experience · %s", p.ExperienceYears, p.Availability)) + "\n\n")

	if len(p.Skills) > 0 {
		b.WriteString(a.styles.Header.Render("Skills") + "\n")
		b.WriteString("  " + a.styles.Muted.Render(strings.Join(p.Skills, " · ")) + "\n\n")
	}

	b.WriteString(a.styles.Header.Render("Reviews") + "\n")
	reviews := a.reviews[p.ID]
	if len(reviews) == 0 {
		b.WriteString(a.styles.Muted.Render("  No reviews yet. Be the first to review!") + "\n")
	}
	for _, rv := range reviews {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			a.styles.Header.Render(rv.Author),
			a.styles.Star.Render(stars(rv.Rating))))
		b.WriteString("  " + a.styles.Muted.Render(rv.CreatedAt.Format("January 2, 2006")) + "\n")
		if rv.Comment != nil {
			b.WriteString("  " + *rv.Comment + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// ---------------------------------------------------------------------------
// Form modal
// ---------------------------------------------------------------------------

func (a *App) renderForm() string {
	f := a.form
	title := "Book " + f.provider.Name
	if f.kind == formReview {
		title = "Review " + f.provider.Name
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render(title) + "\n\n")

	switch f.ctrl.State() {
	case submit.StateSucceeded:
		b.WriteString(a.styles.Success.Render("✓ "+successTitle(f.kind)) + "\n")
		b.WriteString(successBody(f) + "\n")
	default:
		for i, label := range f.labels {
			marker := "  "
			if i == f.focus {
				marker = a.styles.Accent.Render("> ")
			}
			b.WriteString(marker + a.styles.Subtext.Render(label) + "\n")
			if f.kind == formReview && i == reviewFieldRating {
				line := "  " + a.styles.Star.Render(stars(f.rating))
				if f.rating > 0 {
					plural := "s"
					if f.rating == 1 {
						plural = ""
					}
					line += a.styles.Muted.Render(fmt.Sprintf("  %d star%s", f.rating, plural))
				}
				b.WriteString(line + "\n")
				continue
			}
			b.WriteString("  " + f.inputs[f.inputIndex(i)].View() + "\n")
		}

		if f.errText != "" {
			b.WriteString("\n" + a.styles.Error.Render(f.errText) + "\n")
		}
		if f.ctrl.State() == submit.StatePending {
			b.WriteString("\n" + a.styles.Accent.Render("⟳ Submitting...") + "\n")
			b.WriteString(a.styles.Muted.Render("submit disabled while in flight") + "\n")
		} else {
			b.WriteString("\n" + a.styles.Help.Render("enter submit · tab next field · esc cancel") + "\n")
		}
	}

	return a.styles.Modal.Render(b.String())
}

func successTitle(kind formKind) string {
	if kind == formBooking {
		return "Booking Submitted!"
	}
	return "Review Submitted!"
}

func successBody(f *form) string {
	if f.kind == formBooking {
		return f.provider.Name + " will contact you shortly to confirm the booking."
	}
	return "Thank you for your feedback."
}

// ---------------------------------------------------------------------------
// Footer
// ---------------------------------------------------------------------------

func (a *App) renderFooter(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return a.styles.Help.Render(strings.Join(parts, "  "))
}
