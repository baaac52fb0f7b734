package services

import (
	"context"
	"errors"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/auth"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
)

// accountStore is the persistence surface AuthService needs from the
// user repository.
type accountStore interface {
	CreateStudentAccount(ctx context.Context, user *models.User, speciality string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// tokenIssuer creates signed access tokens
type tokenIssuer interface {
	GenerateToken(user *models.User) (token string, expiresIn int, err error)
}

// AuthService handles student registration and login
type AuthService struct {
	users  accountStore
	tokens tokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(users accountStore, tokens tokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// RegisterStudent creates a user account with its student profile and
// returns a signed token for the new account.
func (s *AuthService) RegisterStudent(ctx context.Context, name, email, password, speciality string) (*models.User, string, int, error) {
	if !models.IsValidSpeciality(speciality) {
		return nil, "", 0, apperrors.ErrInvalidSpeciality
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", 0, err
	}

	user := &models.User{
		Email:    email,
		Password: hash,
		Name:     name,
	}
	if _, err := s.users.CreateStudentAccount(ctx, user, speciality); err != nil {
		return nil, "", 0, err
	}

	token, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", 0, err
	}

	logger.Info().Int64("userId", user.ID).Str("speciality", speciality).Msg("Student registered")
	return user, token, expiresIn, nil
}

// Login verifies the credentials and returns a signed token. Both an
// unknown email and a wrong password map to ErrInvalidCredentials so
// the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, int, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", 0, apperrors.ErrInvalidCredentials
		}
		return nil, "", 0, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", 0, err
	}

	return user, token, expiresIn, nil
}
