package repository

import "time"

// Provider represents one listed service professional. The roster is loaded
// once at startup and treated as an immutable snapshot.
type Provider struct {
	ID              string
	Name            string
	Profession      string
	Location        string
	Phone           string
	Email           *string
	Rating          float64
	Skills          []string
	Availability    string
	PhotoRef        *string
	Description     string
	ExperienceYears int
}

// Review represents a review row referencing a provider by id.
type Review struct {
	ID         string
	ProviderID string
	Author     string
	Rating     int
	Comment    *string
	CreatedAt  time.Time
}
