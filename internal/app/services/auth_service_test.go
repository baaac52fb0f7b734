package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/auth"
)

type fakeAccountStore struct {
	mu         sync.Mutex
	nextUserID int64
	byEmail    map[string]*models.User
	speciality map[int64]string
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{
		byEmail:    make(map[string]*models.User),
		speciality: make(map[int64]string),
	}
}

func (f *fakeAccountStore) CreateStudentAccount(_ context.Context, user *models.User, speciality string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[user.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	f.nextUserID++
	user.ID = f.nextUserID
	user.RoleType = models.RoleStudent
	f.byEmail[user.Email] = user
	f.speciality[user.ID] = speciality
	return user.ID, nil
}

func (f *fakeAccountStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(user *models.User) (string, int, error) {
	return "token-for-" + user.Email, 3600, nil
}

func TestRegisterStudent(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAuthService(store, fakeTokenIssuer{})

	user, token, expiresIn, err := svc.RegisterStudent(context.Background(), "Amine", "amine@mail.com", "secret-password", "Computer Science")
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}
	if user.RoleType != models.RoleStudent {
		t.Errorf("role = %q, want %q", user.RoleType, models.RoleStudent)
	}
	if token == "" || expiresIn == 0 {
		t.Error("registration should return a token with an expiry")
	}
	if user.Password == "secret-password" {
		t.Error("the stored password must be hashed")
	}
	if !auth.CheckPassword(user.Password, "secret-password") {
		t.Error("the stored hash should verify against the original password")
	}
	if store.speciality[user.ID] != "Computer Science" {
		t.Errorf("stored speciality = %q, want Computer Science", store.speciality[user.ID])
	}
}

func TestRegisterStudentInvalidSpeciality(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAuthService(store, fakeTokenIssuer{})

	_, _, _, err := svc.RegisterStudent(context.Background(), "Amine", "amine@mail.com", "secret-password", "Alchemy")
	if !errors.Is(err, apperrors.ErrInvalidSpeciality) {
		t.Fatalf("RegisterStudent() error = %v, want ErrInvalidSpeciality", err)
	}
	if len(store.byEmail) != 0 {
		t.Errorf("stored accounts = %d, want 0", len(store.byEmail))
	}
}

func TestRegisterStudentDuplicateEmail(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAuthService(store, fakeTokenIssuer{})

	if _, _, _, err := svc.RegisterStudent(context.Background(), "Amine", "amine@mail.com", "secret-password", "Computer Science"); err != nil {
		t.Fatalf("first RegisterStudent() error = %v", err)
	}
	_, _, _, err := svc.RegisterStudent(context.Background(), "Someone Else", "amine@mail.com", "other-password", "Data Science")
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("second RegisterStudent() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAuthService(store, fakeTokenIssuer{})

	if _, _, _, err := svc.RegisterStudent(context.Background(), "Amine", "amine@mail.com", "secret-password", "Computer Science"); err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}

	user, token, _, err := svc.Login(context.Background(), "amine@mail.com", "secret-password")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Email != "amine@mail.com" || token == "" {
		t.Errorf("Login() = (%q, %q), want the registered user and a token", user.Email, token)
	}
}

// Wrong password and unknown email must be indistinguishable to the
// caller.
func TestLoginInvalidCredentials(t *testing.T) {
	store := newFakeAccountStore()
	svc := NewAuthService(store, fakeTokenIssuer{})

	if _, _, _, err := svc.RegisterStudent(context.Background(), "Amine", "amine@mail.com", "secret-password", "Computer Science"); err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}

	if _, _, _, err := svc.Login(context.Background(), "amine@mail.com", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() with wrong password: error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "nobody@mail.com", "secret-password"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("Login() with unknown email: error = %v, want ErrInvalidCredentials", err)
	}
}
