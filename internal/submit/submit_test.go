package submit

import (
	"errors"
	"testing"
)

func validBooking() BookingRequest {
	return BookingRequest{
		ProviderID:    "p1",
		ProviderName:  "Alice Hartman",
		CustomerName:  "Sam T.",
		CustomerPhone: "512-555-0100",
		Service:       "deck repair",
	}
}

func validReview() ReviewRequest {
	return ReviewRequest{
		ProviderID:   "p1",
		ProviderName: "Alice Hartman",
		Author:       "Sam T.",
		Rating:       5,
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestBookingValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingRequest)
		field  string
	}{
		{"missing name", func(b *BookingRequest) { b.CustomerName = "  " }, "name"},
		{"missing phone", func(b *BookingRequest) { b.CustomerPhone = "" }, "phone"},
		{"missing service", func(b *BookingRequest) { b.Service = "" }, "service"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBooking()
			tc.mutate(&b)
			err := b.Validate()
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}

	// email and preferred date are optional
	b := validBooking()
	b.CustomerEmail = ""
	b.PreferredDate = ""
	if err := b.Validate(); err != nil {
		t.Fatalf("optional fields must not be required: %v", err)
	}
}

func TestReviewValidation(t *testing.T) {
	r := validReview()
	if err := r.Validate(); err != nil {
		t.Fatalf("valid review rejected: %v", err)
	}

	r = validReview()
	r.Author = ""
	if err := r.Validate(); err == nil {
		t.Fatal("missing author must be rejected")
	}

	// rating zero gets the dedicated select-a-rating message
	r = validReview()
	r.Rating = 0
	err := r.Validate()
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "rating" {
		t.Fatalf("expected rating validation error, got %v", err)
	}
	if verr.Message != "please select a rating" {
		t.Errorf("message = %q", verr.Message)
	}

	r = validReview()
	r.Rating = 6
	if err := r.Validate(); err == nil {
		t.Fatal("rating above 5 must be rejected")
	}
}

// ---------------------------------------------------------------------------
// State machine
// ---------------------------------------------------------------------------

func TestSubmitInvalidNeverReachesPending(t *testing.T) {
	var c Controller
	b := validBooking()
	b.CustomerName = ""
	gen, ok := c.Submit(b)
	if ok || gen != 0 {
		t.Fatalf("invalid submit accepted: gen=%d ok=%v", gen, ok)
	}
	if c.State() != StateFailed {
		t.Fatalf("state = %v, want failed", c.State())
	}
	if c.Reason() == "" {
		t.Error("expected an inline validation reason")
	}
}

func TestSubmitValidEntersPendingImmediately(t *testing.T) {
	var c Controller
	gen, ok := c.Submit(validBooking())
	if !ok {
		t.Fatalf("valid submit rejected: %s", c.Reason())
	}
	if c.State() != StatePending {
		t.Fatalf("state = %v, want pending", c.State())
	}
	if gen != c.Gen() {
		t.Fatalf("returned gen %d != current gen %d", gen, c.Gen())
	}
	if c.Payload() == nil {
		t.Fatal("pending state must hold the payload")
	}
}

func TestResubmitAfterValidationFailure(t *testing.T) {
	var c Controller
	bad := validBooking()
	bad.Service = ""
	if _, ok := c.Submit(bad); ok {
		t.Fatal("invalid submit accepted")
	}
	if _, ok := c.Submit(validBooking()); !ok {
		t.Fatalf("resubmit after validation failure rejected: %s", c.Reason())
	}
	if c.State() != StatePending {
		t.Fatalf("state = %v, want pending", c.State())
	}
	if c.Reason() != "" {
		t.Errorf("stale reason survived resubmit: %q", c.Reason())
	}
}

func TestDoubleSubmitWhilePendingIsNoOp(t *testing.T) {
	var c Controller
	gen, _ := c.Submit(validBooking())
	if _, ok := c.Submit(validBooking()); ok {
		t.Fatal("second submit while pending must be a no-op")
	}
	if c.Gen() != gen {
		t.Fatalf("no-op submit changed generation: %d -> %d", gen, c.Gen())
	}
}

func TestResolveThenFinish(t *testing.T) {
	var c Controller
	gen, _ := c.Submit(validReview())
	if !c.Resolve(gen) {
		t.Fatal("resolve with current gen must apply")
	}
	if c.State() != StateSucceeded {
		t.Fatalf("state = %v, want succeeded", c.State())
	}
	if !c.Finish(gen) {
		t.Fatal("finish with current gen must apply")
	}
	if c.State() != StateClosed {
		t.Fatalf("state = %v, want closed", c.State())
	}
}

func TestStaleGenerationAppliesNothing(t *testing.T) {
	var c Controller
	gen, _ := c.Submit(validBooking())
	if c.Resolve(gen + 1) {
		t.Fatal("stale resolve applied")
	}
	if c.State() != StatePending {
		t.Fatalf("state = %v, want pending", c.State())
	}
	if c.Finish(gen) {
		t.Fatal("finish before resolve applied")
	}
}

func TestCancelDuringPendingPreventsResolve(t *testing.T) {
	var c Controller
	gen, _ := c.Submit(validBooking())
	c.Cancel()
	if c.Resolve(gen) {
		t.Fatal("resolve after cancel applied")
	}
	if c.Finish(gen) {
		t.Fatal("finish after cancel applied")
	}
	if c.State() != StateClosed {
		t.Fatalf("state = %v, want closed", c.State())
	}
}

func TestCancelDuringSucceededPreventsAutoClose(t *testing.T) {
	var c Controller
	gen, _ := c.Submit(validBooking())
	c.Resolve(gen)
	c.Cancel()
	if c.Finish(gen) {
		t.Fatal("auto-close after cancel applied")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	var c Controller
	gen, _ := c.Submit(validBooking())
	c.Cancel()
	c.Cancel()
	c.Cancel()
	if c.Resolve(gen) {
		t.Fatal("resolve applied after repeated cancel")
	}
	if c.State() != StateClosed {
		t.Fatalf("state = %v, want closed", c.State())
	}
}

func TestStateStrings(t *testing.T) {
	want := map[State]string{
		StateIdle:      "idle",
		StatePending:   "pending",
		StateSucceeded: "succeeded",
		StateFailed:    "failed",
		StateClosed:    "closed",
	}
	for s, label := range want {
		if s.String() != label {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), label)
		}
	}
}
