package models

import "time"

// Master defines a master's program based on the 'masters' table.
// Invariant: ApplicationEndDate is strictly after ApplicationStartDate.
type Master struct {
	ID                   int64     `json:"id" db:"id"`
	UniversityID         int64     `json:"universityId" db:"university_id"`
	Name                 string    `json:"name" db:"name"`
	Description          string    `json:"description" db:"description"`
	MaxStudents          int       `json:"maxStudents" db:"max_students"`
	ApplicationStartDate time.Time `json:"applicationStartDate" db:"application_start_date"`
	ApplicationEndDate   time.Time `json:"applicationEndDate" db:"application_end_date"`

	// Directory annotations, populated by aggregation queries
	Specialities     []string       `json:"specialities"`
	ApplicationCount int            `json:"applicationCount"`
	UniversityEmail  string         `json:"universityEmail,omitempty"`
	Applications     []*Application `json:"applications,omitempty"`
}
