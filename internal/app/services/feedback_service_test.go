package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

type fakeFeedbackStore struct {
	mu      sync.Mutex
	nextID  int64
	entries []*models.Feedback
}

func (f *fakeFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	feedback.ID = f.nextID
	feedback.CreatedAt = time.Now()
	f.entries = append(f.entries, feedback)
	return nil
}

func (f *fakeFeedbackStore) ListAll(_ context.Context) ([]*models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Feedback(nil), f.entries...), nil
}

func TestSubmitFeedback(t *testing.T) {
	store := &fakeFeedbackStore{}
	notifier := &recordingNotifier{}
	svc := NewFeedbackService(store, notifier, "admin@portal.tn")

	fb, err := svc.Submit(context.Background(), 1, "Great portal", "Everything worked", 5)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if fb.ID == 0 {
		t.Error("stored feedback should have an id")
	}

	sent := notifier.sent()
	if len(sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(sent))
	}
	if sent[0].to != "admin@portal.tn" {
		t.Errorf("notification recipient = %q, want the admin address", sent[0].to)
	}
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		store := &fakeFeedbackStore{}
		notifier := &recordingNotifier{}
		svc := NewFeedbackService(store, notifier, "admin@portal.tn")

		_, err := svc.Submit(context.Background(), 1, "Subject", "Message", rating)
		if !errors.Is(err, apperrors.ErrInvalidRating) {
			t.Errorf("Submit(rating=%d) error = %v, want ErrInvalidRating", rating, err)
		}
		if len(store.entries) != 0 {
			t.Errorf("Submit(rating=%d) stored %d entries, want 0", rating, len(store.entries))
		}
		if len(notifier.sent()) != 0 {
			t.Errorf("Submit(rating=%d) sent %d notifications, want 0", rating, len(notifier.sent()))
		}
	}

	// Boundary values are valid.
	for _, rating := range []int{1, 5} {
		store := &fakeFeedbackStore{}
		svc := NewFeedbackService(store, &recordingNotifier{}, "admin@portal.tn")
		if _, err := svc.Submit(context.Background(), 1, "Subject", "Message", rating); err != nil {
			t.Errorf("Submit(rating=%d) error = %v, want nil", rating, err)
		}
	}
}

func TestSubmitFeedbackWithoutAdminAddress(t *testing.T) {
	store := &fakeFeedbackStore{}
	notifier := &recordingNotifier{}
	svc := NewFeedbackService(store, notifier, "")

	if _, err := svc.Submit(context.Background(), 1, "Subject", "Message", 3); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(notifier.sent()) != 0 {
		t.Errorf("notifications sent = %d, want 0 when no admin address is configured", len(notifier.sent()))
	}
}
