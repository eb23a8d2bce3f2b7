package repository

import (
	"context"
	"strings"
)

// ProviderRepo handles the provider roster.
type ProviderRepo struct {
	db DBTX
}

func NewProviderRepo(db DBTX) *ProviderRepo { return &ProviderRepo{db: db} }

func (r *ProviderRepo) Insert(ctx context.Context, p Provider) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO providers(
	 id, name, profession, location, phone, email, rating, skills,
	 availability, photo_ref, description, experience_years, sort_order)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
	 (SELECT COALESCE(MAX(sort_order), -1) + 1 FROM providers));
	`,
		p.ID, p.Name, p.Profession, p.Location, p.Phone, p.Email, p.Rating,
		joinSkills(p.Skills), p.Availability, p.PhotoRef, p.Description, p.ExperienceYears)
	return err
}

// Snapshot returns the full roster in its fixed seeded order. Callers treat
// the result as read-only for the lifetime of the process.
func (r *ProviderRepo) Snapshot(ctx context.Context) ([]Provider, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, profession, location, phone, email, rating, skills,
	       availability, photo_ref, description, experience_years
	FROM providers ORDER BY sort_order, name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Provider
	for rows.Next() {
		var p Provider
		var skills string
		if err := rows.Scan(&p.ID, &p.Name, &p.Profession, &p.Location, &p.Phone,
			&p.Email, &p.Rating, &skills, &p.Availability, &p.PhotoRef,
			&p.Description, &p.ExperienceYears); err != nil {
			return nil, err
		}
		p.Skills = splitSkills(skills)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProviderRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM providers`).Scan(&n)
	return n, err
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ",")
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
