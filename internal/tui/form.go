package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"localconnect/internal/database/repository"
	"localconnect/internal/submit"
)

// ---------------------------------------------------------------------------
// Booking / review form modal
// ---------------------------------------------------------------------------

type formKind int

const (
	formBooking formKind = iota
	formReview
)

// Booking field order.
const (
	bookingFieldName = iota
	bookingFieldPhone
	bookingFieldEmail
	bookingFieldService
	bookingFieldDate
	bookingFieldCount
)

// Review field order; the rating selector sits between the text inputs.
const (
	reviewFieldName = iota
	reviewFieldRating
	reviewFieldComment
	reviewFieldCount
)

// form is one open booking or review dialog. It owns a submission
// controller for its lifetime and is destroyed when closed.
type form struct {
	kind     formKind
	provider repository.Provider
	inputs   []textinput.Model
	labels   []string
	rating   int // review only; 0 = unselected
	focus    int
	ctrl     *submit.Controller
	errText  string
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

func newBookingForm(p repository.Provider) *form {
	f := &form{
		kind:     formBooking,
		provider: p,
		labels:   []string{"Your Name *", "Phone Number *", "Email (optional)", "Service Required *", "Preferred Date (YYYY-MM-DD)"},
		inputs: []textinput.Model{
			newInput("Jane Doe", 80),
			newInput("512-555-0100", 32),
			newInput("jane@example.com", 120),
			newInput("Describe the service you need...", 240),
			newInput("2026-09-15", 10),
		},
		ctrl: &submit.Controller{},
	}
	f.inputs[0].Focus()
	return f
}

func newReviewForm(p repository.Provider) *form {
	f := &form{
		kind:     formReview,
		provider: p,
		labels:   []string{"Your Name *", "Rating *", "Your Review"},
		inputs: []textinput.Model{
			newInput("Jane Doe", 80),
			newInput("Share your experience...", 400),
		},
		ctrl: &submit.Controller{},
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) fieldCount() int {
	if f.kind == formBooking {
		return bookingFieldCount
	}
	return reviewFieldCount
}

// inputIndex maps a focus position to an index in f.inputs, or -1 for the
// review rating selector.
func (f *form) inputIndex(focus int) int {
	if f.kind == formBooking {
		return focus
	}
	switch focus {
	case reviewFieldName:
		return 0
	case reviewFieldComment:
		return 1
	}
	return -1
}

func (f *form) moveFocus(delta int) {
	if idx := f.inputIndex(f.focus); idx >= 0 {
		f.inputs[idx].Blur()
	}
	n := f.fieldCount()
	f.focus = (f.focus + delta + n) % n
	if idx := f.inputIndex(f.focus); idx >= 0 {
		f.inputs[idx].Focus()
	}
}

func (f *form) payload() submit.Payload {
	if f.kind == formBooking {
		return submit.BookingRequest{
			ProviderID:    f.provider.ID,
			ProviderName:  f.provider.Name,
			CustomerName:  strings.TrimSpace(f.inputs[bookingFieldName].Value()),
			CustomerPhone: strings.TrimSpace(f.inputs[bookingFieldPhone].Value()),
			CustomerEmail: strings.TrimSpace(f.inputs[bookingFieldEmail].Value()),
			Service:       strings.TrimSpace(f.inputs[bookingFieldService].Value()),
			PreferredDate: strings.TrimSpace(f.inputs[bookingFieldDate].Value()),
		}
	}
	return submit.ReviewRequest{
		ProviderID:   f.provider.ID,
		ProviderName: f.provider.Name,
		Author:       strings.TrimSpace(f.inputs[0].Value()),
		Rating:       f.rating,
		Comment:      strings.TrimSpace(f.inputs[1].Value()),
	}
}

// handleFormKey routes keys while a form is open. Input is frozen during
// the pending and success phases except for esc, which cancels and tears
// down any scheduled timers.
func (a *App) handleFormKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form
	if m.String() == "esc" {
		a.closeForm("")
		return a, nil
	}
	if f.ctrl.State() == submit.StatePending || f.ctrl.State() == submit.StateSucceeded {
		// submit control disabled while a submission is in flight
		return a, nil
	}

	switch m.String() {
	case "tab", "down":
		f.moveFocus(1)
		return a, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return a, nil
	case "enter":
		gen, ok := f.ctrl.Submit(f.payload())
		if !ok {
			f.errText = f.ctrl.Reason()
			return a, nil
		}
		f.errText = ""
		return a, resolveTimerCmd(gen)
	}

	if f.kind == formReview && f.focus == reviewFieldRating {
		switch m.String() {
		case "1", "2", "3", "4", "5":
			f.rating = int(m.String()[0] - '0')
		case "left", "h":
			if f.rating > 1 {
				f.rating--
			}
		case "right", "l":
			if f.rating < 5 {
				f.rating++
			}
		}
		return a, nil
	}

	idx := f.inputIndex(f.focus)
	if idx < 0 {
		return a, nil
	}
	var cmd tea.Cmd
	f.inputs[idx], cmd = f.inputs[idx].Update(m)
	return a, cmd
}

// closeForm cancels any in-flight submission and destroys the form.
func (a *App) closeForm(status string) {
	if a.form == nil {
		return
	}
	a.form.ctrl.Cancel()
	a.form = nil
	if status != "" {
		a.status = status
	}
}
