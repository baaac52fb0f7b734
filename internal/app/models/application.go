package models

import "time"

// Application defines an admission application based on the
// 'applications' table. At most one row exists per
// (student_id, master_id) pair.
type Application struct {
	ID        int64             `json:"id" db:"id"`
	StudentID int64             `json:"studentId" db:"student_id"`
	MasterID  int64             `json:"masterId" db:"master_id"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`

	// Review annotations, populated by the directory queries
	MasterName         string   `json:"masterName,omitempty"`
	MasterSpecialities []string `json:"masterSpecialities,omitempty"`
	StudentEmail       string   `json:"studentEmail,omitempty"`
	StudentSpeciality  string   `json:"studentSpeciality,omitempty"`
	FirstYearMark      *float64 `json:"firstYearMark,omitempty"`
	SecondYearMark     *float64 `json:"secondYearMark,omitempty"`
	ThirdYearMark      *float64 `json:"thirdYearMark,omitempty"`
	CalculatedScore    *float64 `json:"calculatedScore,omitempty"`
	TranscriptPDF      *string  `json:"transcriptPdf,omitempty"`
}
