package dto

// CreateUniversityRequest represents a university account creation
// request. The credentials are mailed to the account address.
type CreateUniversityRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"University of Tunis"`
	Email    string `json:"email" binding:"required,email" example:"contact@ut.tn"`
	Password string `json:"password" binding:"required,min=8" example:"initial-password"`
}

// UpdateUniversityRequest represents a university account update.
// Password is optional; when present it replaces the stored one and
// the account is notified.
type UpdateUniversityRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100" example:"University of Tunis"`
	Email    string  `json:"email" binding:"required,email" example:"contact@ut.tn"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
}
