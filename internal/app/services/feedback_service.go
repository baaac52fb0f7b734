package services

import (
	"context"
	"fmt"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/email"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/validation"
)

// feedbackStore is the persistence surface FeedbackService needs from
// the feedback repository.
type feedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListAll(ctx context.Context) ([]*models.Feedback, error)
}

// FeedbackService handles feedback submission and the super-admin
// feedback inbox.
type FeedbackService struct {
	feedback   feedbackStore
	notifier   email.Notifier
	adminEmail string
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedback feedbackStore, notifier email.Notifier, adminEmail string) *FeedbackService {
	return &FeedbackService{
		feedback:   feedback,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

// Submit stores a feedback entry and notifies the operator address.
// Entries are immutable once stored.
func (s *FeedbackService) Submit(ctx context.Context, userID int64, subject, message string, rating int) (*models.Feedback, error) {
	if !validation.ValidRating(rating) {
		return nil, apperrors.ErrInvalidRating
	}

	fb := &models.Feedback{
		UserID:  userID,
		Subject: subject,
		Message: message,
		Rating:  rating,
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}

	if s.adminEmail != "" {
		s.notifier.Dispatch(s.adminEmail,
			"New feedback: "+subject,
			fmt.Sprintf("Rating: %d/5\n\n%s", rating, message))
	}

	return fb, nil
}

// ListAll retrieves every feedback entry, newest first
func (s *FeedbackService) ListAll(ctx context.Context) ([]*models.Feedback, error) {
	return s.feedback.ListAll(ctx)
}
