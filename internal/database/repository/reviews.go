package repository

import (
	"context"
)

// ReviewRepo handles seeded reviews.
type ReviewRepo struct {
	db DBTX
}

func NewReviewRepo(db DBTX) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Insert(ctx context.Context, rev Review) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO reviews(id, provider_id, author, rating, comment, created_at)
	VALUES(?, ?, ?, ?, ?, ?);
	`, rev.ID, rev.ProviderID, rev.Author, rev.Rating, rev.Comment, rev.CreatedAt)
	return err
}

// ListByProvider returns a provider's reviews, newest first.
func (r *ReviewRepo) ListByProvider(ctx context.Context, providerID string) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, provider_id, author, rating, comment, created_at
	FROM reviews WHERE provider_id = ?
	ORDER BY created_at DESC, id;`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ID, &rev.ProviderID, &rev.Author, &rev.Rating,
			&rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
