package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/dberrors"
)

// FeedbackRepository handles database operations for feedback entries
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create inserts a feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO feedback (user_id, subject, message, rating)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		feedback.UserID, feedback.Subject, feedback.Message, feedback.Rating,
	).Scan(&feedback.ID, &feedback.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating feedback: %w", err)
	}

	return nil
}

// ListAll retrieves every feedback entry with the author's name,
// newest first.
func (r *FeedbackRepository) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.user_id, f.subject, f.message, f.rating, f.created_at, u.name
		FROM feedback f
		JOIN users u ON u.id = f.user_id
		ORDER BY f.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing feedback: %w", err)
	}
	defer rows.Close()

	var entries []*models.Feedback
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.Subject, &fb.Message,
			&fb.Rating, &fb.CreatedAt, &fb.UserName); err != nil {
			return nil, err
		}
		entries = append(entries, &fb)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
