package dto

// SubmitFeedbackRequest represents a feedback submission
type SubmitFeedbackRequest struct {
	Subject string `json:"subject" binding:"required,min=2,max=255" example:"Great portal"`
	Message string `json:"message" binding:"required" example:"The application process was simple."`
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
}
