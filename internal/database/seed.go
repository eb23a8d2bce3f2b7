package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"localconnect/internal/database/repository"
)

// Seed ensures a baseline roster exists for new databases.
// It is idempotent and safe to run on every startup.
func Seed(ctx context.Context, db *sql.DB) error {
	provRepo := repository.NewProviderRepo(db)
	n, err := provRepo.Count(ctx)
	if err == nil && n > 0 {
		return nil
	}

	// all or nothing: a partial roster would persist and block reseeding
	return WithTx(db, func(tx *sql.Tx) error {
		provTx := repository.NewProviderRepo(tx)
		revTx := repository.NewReviewRepo(tx)
		for _, p := range defaultProviders() {
			p.ID = providerID(p.Name)
			if err := provTx.Insert(ctx, p); err != nil {
				return err
			}
		}
		for _, rv := range defaultReviews() {
			rv.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("review:"+rv.ProviderID+":"+rv.Author)).String()
			if err := revTx.Insert(ctx, rv); err != nil {
				return err
			}
		}
		return nil
	})
}

func providerID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("provider:"+name)).String()
}

func strPtr(s string) *string { return &s }

func defaultProviders() []repository.Provider {
	return []repository.Provider{
		{
			Name: "Alice Hartman", Profession: "Carpenter", Location: "Austin",
			Phone: "512-555-0134", Email: strPtr("alice.hartman@example.com"),
			Rating: 4.8, Skills: []string{"framing", "cabinetry", "decking", "finish work"},
			Availability: "Weekdays 8am-5pm",
			Description:  "Custom carpentry and renovations with two decades of residential experience.",
			ExperienceYears: 19,
		},
		{
			Name: "Bob Okafor", Profession: "Plumber", Location: "Austin",
			Phone: "512-555-0178",
			Rating: 4.8, Skills: []string{"pipes", "water heaters", "leak detection"},
			Availability: "24/7 emergency callout",
			Description:  "Licensed plumber covering everything from dripping taps to full repipes.",
			ExperienceYears: 12,
		},
		{
			Name: "Carmen Delgado", Profession: "Electrician", Location: "San Marcos",
			Phone: "512-555-0112", Email: strPtr("carmen.d@example.com"),
			Rating: 4.9, Skills: []string{"wiring", "panel upgrades", "lighting", "EV chargers"},
			Availability: "Mon-Sat 7am-6pm",
			Description:  "Master electrician specialising in older homes and service upgrades.",
			ExperienceYears: 15,
		},
		{
			Name: "Dmitri Volkov", Profession: "Painter", Location: "Round Rock",
			Phone: "512-555-0190",
			Rating: 4.5, Skills: []string{"interior", "exterior", "drywall repair"},
			Availability: "Weekdays 9am-5pm",
			Description:  "Detail-focused painting crew of two, clean lines and cleaner floors.",
			ExperienceYears: 8,
		},
		{
			Name: "Élodie Marchand", Profession: "Landscaper", Location: "Austin",
			Phone: "512-555-0143", Email: strPtr("elodie@example.com"),
			Rating: 4.7, Skills: []string{"garden design", "irrigation", "native planting"},
			Availability: "Seasonal, book ahead",
			Description:  "Water-wise garden design with an eye for Texas natives.",
			ExperienceYears: 11,
		},
		{
			Name: "Frank Miller", Profession: "Handyman", Location: "Round Rock",
			Phone: "512-555-0156",
			Rating: 4.3, Skills: []string{"mounting", "assembly", "small repairs", "gutters"},
			Availability: "Weekends only",
			Description:  "No job too small. Punch lists, flat-pack furniture, honey-do backlogs.",
			ExperienceYears: 6,
		},
		{
			Name: "Grace Liu", Profession: "House Cleaner", Location: "San Marcos",
			Phone: "512-555-0121", Email: strPtr("grace.liu@example.com"),
			Rating: 5.0, Skills: []string{"deep clean", "move-out", "eco products"},
			Availability: "Weekdays 8am-3pm",
			Description:  "Thorough, reliable cleaning with non-toxic products and a checklist for every room.",
			ExperienceYears: 9,
		},
		{
			Name: "Hector Ramirez", Profession: "HVAC Technician", Location: "Austin",
			Phone: "512-555-0167",
			Rating: 4.6, Skills: []string{"ac repair", "heat pumps", "duct cleaning"},
			Availability: "Mon-Fri 7am-7pm",
			Description:  "EPA-certified HVAC tech keeping Austin summers survivable since 2010.",
			ExperienceYears: 14,
		},
	}
}

func defaultReviews() []repository.Review {
	// second precision matches sqlite's timestamp rendering
	day := func(daysAgo int) time.Time {
		return time.Now().UTC().AddDate(0, 0, -daysAgo).Truncate(time.Second)
	}
	return []repository.Review{
		{ProviderID: providerID("Alice Hartman"), Author: "Sam T.", Rating: 5,
			Comment: strPtr("Rebuilt our back deck in a week. Spotless work."), CreatedAt: day(12)},
		{ProviderID: providerID("Alice Hartman"), Author: "Priya K.", Rating: 4,
			Comment: strPtr("Great cabinets, scheduling took a while."), CreatedAt: day(40)},
		{ProviderID: providerID("Bob Okafor"), Author: "Dana W.", Rating: 5,
			Comment: strPtr("Came out at 2am for a burst pipe. Lifesaver."), CreatedAt: day(5)},
		{ProviderID: providerID("Carmen Delgado"), Author: "Miles O.", Rating: 5,
			Comment: strPtr("Panel upgrade passed inspection first try."), CreatedAt: day(21)},
		{ProviderID: providerID("Grace Liu"), Author: "Jordan P.", Rating: 5, CreatedAt: day(3)},
		{ProviderID: providerID("Hector Ramirez"), Author: "Avery L.", Rating: 4,
			Comment: strPtr("AC fixed same day, fair price."), CreatedAt: day(60)},
	}
}
