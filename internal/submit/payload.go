package submit

import (
	"fmt"
	"strings"
)

// Payload is a submittable form request.
type Payload interface {
	Validate() error
	Kind() string
	Describe() string // one-line diagnostic summary for the debug log
}

// ValidationError reports a missing or invalid field. It is surfaced inline
// in the form and never transitions the controller to Pending.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// BookingRequest is the booking form payload. Email and preferred date are
// optional.
type BookingRequest struct {
	ProviderID    string
	ProviderName  string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Service       string
	PreferredDate string
}

func (b BookingRequest) Kind() string { return "booking" }

func (b BookingRequest) Describe() string {
	return fmt.Sprintf("provider=%s customer=%q service=%q date=%q",
		b.ProviderID, b.CustomerName, b.Service, b.PreferredDate)
}

func (b BookingRequest) Validate() error {
	if strings.TrimSpace(b.CustomerName) == "" {
		return ValidationError{Field: "name", Message: "please enter your name"}
	}
	if strings.TrimSpace(b.CustomerPhone) == "" {
		return ValidationError{Field: "phone", Message: "please enter a phone number"}
	}
	if strings.TrimSpace(b.Service) == "" {
		return ValidationError{Field: "service", Message: "please describe the service you need"}
	}
	return nil
}

// ReviewRequest is the review form payload. Comment is optional.
type ReviewRequest struct {
	ProviderID   string
	ProviderName string
	Author       string
	Rating       int
	Comment      string
}

func (r ReviewRequest) Kind() string { return "review" }

func (r ReviewRequest) Describe() string {
	return fmt.Sprintf("provider=%s author=%q rating=%d", r.ProviderID, r.Author, r.Rating)
}

func (r ReviewRequest) Validate() error {
	if strings.TrimSpace(r.Author) == "" {
		return ValidationError{Field: "name", Message: "please enter your name"}
	}
	// Rating gets its own check ahead of range validation: an untouched
	// star selector reads 0 and deserves a friendlier message.
	if r.Rating == 0 {
		return ValidationError{Field: "rating", Message: "please select a rating"}
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}
	return nil
}
