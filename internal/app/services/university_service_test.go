package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

type fakeUniversityStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.User
}

func newFakeUniversityStore() *fakeUniversityStore {
	return &fakeUniversityStore{byID: make(map[int64]*models.User)}
}

func (f *fakeUniversityStore) CreateUniversity(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.RoleType = models.RoleUniversity
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUniversityStore) UpdateUniversity(_ context.Context, id int64, name, email string, passwordHash *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return apperrors.ErrUniversityNotFound
	}
	u.Name = name
	u.Email = email
	if passwordHash != nil {
		u.Password = *passwordHash
	}
	return nil
}

func (f *fakeUniversityStore) DeleteUniversity(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUniversityStore) ListUniversities(_ context.Context) ([]*models.University, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.University
	for _, u := range f.byID {
		out = append(out, &models.University{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}

func (f *fakeUniversityStore) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateUniversityMailsCredentials(t *testing.T) {
	store := newFakeUniversityStore()
	notifier := &recordingNotifier{}
	svc := NewUniversityService(store, notifier)

	user, err := svc.Create(context.Background(), "University of Tunis", "contact@ut.tn", "initial-password")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.RoleType != models.RoleUniversity {
		t.Errorf("role = %q, want %q", user.RoleType, models.RoleUniversity)
	}
	if user.Password == "initial-password" {
		t.Error("the stored password must be hashed")
	}

	sent := notifier.sent()
	if len(sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(sent))
	}
	if sent[0].to != "contact@ut.tn" || !strings.Contains(sent[0].body, "initial-password") {
		t.Errorf("credentials mail = %+v, want the plaintext password sent to the account address", sent[0])
	}
}

func TestCreateUniversityDuplicateEmail(t *testing.T) {
	store := newFakeUniversityStore()
	notifier := &recordingNotifier{}
	svc := NewUniversityService(store, notifier)

	if _, err := svc.Create(context.Background(), "University of Tunis", "contact@ut.tn", "pw"); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	if _, err := svc.Create(context.Background(), "Other", "contact@ut.tn", "pw"); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("second Create() error = %v, want ErrEmailAlreadyExists", err)
	}
	if len(notifier.sent()) != 1 {
		t.Errorf("notifications sent = %d, want only the first account's mail", len(notifier.sent()))
	}
}

func TestUpdateUniversity(t *testing.T) {
	store := newFakeUniversityStore()
	notifier := &recordingNotifier{}
	svc := NewUniversityService(store, notifier)

	user, err := svc.Create(context.Background(), "University of Tunis", "contact@ut.tn", "pw")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	mailsAfterCreate := len(notifier.sent())

	// Rename without a password change: no mail goes out.
	if err := svc.Update(context.Background(), user.ID, "Tunis El Manar", "contact@ut.tn", nil); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(notifier.sent()) != mailsAfterCreate {
		t.Error("an update without a password change should not send mail")
	}

	// Password change mails the account.
	newPassword := "rotated-password"
	if err := svc.Update(context.Background(), user.ID, "Tunis El Manar", "contact@ut.tn", &newPassword); err != nil {
		t.Fatalf("Update() with password error = %v", err)
	}
	sent := notifier.sent()
	if len(sent) != mailsAfterCreate+1 {
		t.Fatalf("notifications sent = %d, want %d", len(sent), mailsAfterCreate+1)
	}
	if !strings.Contains(sent[len(sent)-1].body, newPassword) {
		t.Error("the password-change mail should carry the new password")
	}
}

func TestUpdateUniversityDuplicateEmailExcludesSelf(t *testing.T) {
	store := newFakeUniversityStore()
	svc := NewUniversityService(store, &recordingNotifier{})

	first, err := svc.Create(context.Background(), "University of Tunis", "contact@ut.tn", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(context.Background(), "University of Sfax", "contact@us.tn", "pw"); err != nil {
		t.Fatal(err)
	}

	// Keeping your own email is fine.
	if err := svc.Update(context.Background(), first.ID, "Renamed", "contact@ut.tn", nil); err != nil {
		t.Errorf("Update() keeping own email: error = %v, want nil", err)
	}
	// Taking another university's email is not.
	if err := svc.Update(context.Background(), first.ID, "Renamed", "contact@us.tn", nil); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("Update() with taken email: error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestDeleteUniversity(t *testing.T) {
	store := newFakeUniversityStore()
	svc := NewUniversityService(store, &recordingNotifier{})

	user, err := svc.Create(context.Background(), "University of Tunis", "contact@ut.tn", "pw")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); !errors.Is(err, apperrors.ErrUniversityNotFound) {
		t.Errorf("second Delete() error = %v, want ErrUniversityNotFound", err)
	}
}
