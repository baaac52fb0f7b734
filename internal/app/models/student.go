package models

// Student defines the student model based on the 'students' table.
// CalculatedScore is derived from the three yearly marks and is only
// ever written together with them.
type Student struct {
	ID              int64    `json:"id" db:"id"`
	UserID          int64    `json:"userId" db:"user_id"`
	Speciality      string   `json:"speciality" db:"speciality"`
	FirstYearMark   *float64 `json:"firstYearMark,omitempty" db:"first_year_mark"`
	SecondYearMark  *float64 `json:"secondYearMark,omitempty" db:"second_year_mark"`
	ThirdYearMark   *float64 `json:"thirdYearMark,omitempty" db:"third_year_mark"`
	CalculatedScore *float64 `json:"calculatedScore,omitempty" db:"calculated_score"`
	TranscriptPDF   *string  `json:"transcriptPdf,omitempty" db:"transcript_pdf"`
	User            *User    `json:"user,omitempty"` // Relation, no db tag
}
