package dto

import "github.com/GHAITHBT/Projet-Master-2025/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"student@mail.com"`
	Password string `json:"password" binding:"required" example:"secret-password"`
}

// RegisterRequest represents a student registration request
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100" example:"Amine Ben Salah"`
	Email      string `json:"email" binding:"required,email" example:"student@mail.com"`
	Password   string `json:"password" binding:"required,min=8" example:"secret-password"`
	Speciality string `json:"speciality" binding:"required" example:"Computer Science"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"86400"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID       int64  `json:"id" example:"1"`
	Email    string `json:"email" example:"student@mail.com"`
	Name     string `json:"name" example:"Amine Ben Salah"`
	RoleType string `json:"roleType" example:"student" enums:"student,university,super_admin"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewAuthResponse builds an AuthResponse from a user and its token
func NewAuthResponse(user *models.User, token string, expiresIn int) AuthResponse {
	return AuthResponse{
		Token: TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			RoleType: string(user.RoleType),
		},
	}
}
