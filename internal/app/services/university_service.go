package services

import (
	"context"
	"fmt"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/auth"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/email"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
)

// universityStore is the persistence surface UniversityService needs
// from the user repository.
type universityStore interface {
	CreateUniversity(ctx context.Context, user *models.User) error
	UpdateUniversity(ctx context.Context, id int64, name, email string, passwordHash *string) error
	DeleteUniversity(ctx context.Context, id int64) error
	ListUniversities(ctx context.Context) ([]*models.University, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}

// UniversityService implements the super-admin university account
// management.
type UniversityService struct {
	users    universityStore
	notifier email.Notifier
}

// NewUniversityService creates a new university service
func NewUniversityService(users universityStore, notifier email.Notifier) *UniversityService {
	return &UniversityService{
		users:    users,
		notifier: notifier,
	}
}

// Create provisions a university account and mails its credentials to
// the new account's address. The mail is best effort.
func (s *UniversityService) Create(ctx context.Context, name, emailAddr, password string) (*models.User, error) {
	exists, err := s.users.EmailExists(ctx, emailAddr, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    emailAddr,
		Password: hash,
		Name:     name,
	}
	if err := s.users.CreateUniversity(ctx, user); err != nil {
		return nil, err
	}

	s.notifier.Dispatch(emailAddr,
		"Your university account",
		fmt.Sprintf("An account has been created for %s.\nEmail: %s\nPassword: %s\nPlease change the password after your first login.",
			name, emailAddr, password))

	logger.Info().Int64("universityId", user.ID).Msg("University account created")
	return user, nil
}

// Update changes a university's name and email, and its password when
// a new one is given. A password change is mailed to the account.
func (s *UniversityService) Update(ctx context.Context, id int64, name, emailAddr string, password *string) error {
	exists, err := s.users.EmailExists(ctx, emailAddr, id)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	var passwordHash *string
	if password != nil && *password != "" {
		hash, err := auth.HashPassword(*password)
		if err != nil {
			return err
		}
		passwordHash = &hash
	}

	if err := s.users.UpdateUniversity(ctx, id, name, emailAddr, passwordHash); err != nil {
		return err
	}

	if passwordHash != nil {
		s.notifier.Dispatch(emailAddr,
			"Your account credentials were updated",
			fmt.Sprintf("The password of your university account (%s) has been changed.\nNew password: %s", emailAddr, *password))
	}

	return nil
}

// Delete removes a university account. Its programs, their speciality
// tags and their applications are removed through the cascade.
func (s *UniversityService) Delete(ctx context.Context, id int64) error {
	if err := s.users.DeleteUniversity(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("universityId", id).Msg("University account deleted")
	return nil
}

// List retrieves all university accounts
func (s *UniversityService) List(ctx context.Context) ([]*models.University, error) {
	return s.users.ListUniversities(ctx)
}
