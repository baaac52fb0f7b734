package dto

// CreateMasterRequest represents a program creation request. Dates use
// the YYYY-MM-DD form; the end date must fall after the start date.
type CreateMasterRequest struct {
	Name                 string   `json:"name" binding:"required,min=2,max=100" example:"MSc Data Engineering"`
	Description          string   `json:"description" example:"Two-year program focused on data infrastructure"`
	MaxStudents          int      `json:"maxStudents" binding:"required,min=1" example:"30"`
	ApplicationStartDate string   `json:"applicationStartDate" binding:"required" example:"2024-01-01"`
	ApplicationEndDate   string   `json:"applicationEndDate" binding:"required" example:"2024-01-31"`
	Specialities         []string `json:"specialities" binding:"required,min=1" example:"Computer Science,Data Science"`
}
