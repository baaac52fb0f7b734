package models

// RoleType defines the role of a user account
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleUniversity RoleType = "university"
	RoleSuperAdmin RoleType = "super_admin"
)

// ApplicationStatus defines the lifecycle state of an application
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// IsDecision reports whether the status is a valid review decision.
// Only accepted and rejected may be set by a reviewer; pending is the
// creation state and cannot be re-applied.
func (s ApplicationStatus) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Specialities is the fixed vocabulary of academic fields students
// register with and programs accept.
var Specialities = []string{
	"Computer Science",
	"Information Technology",
	"Data Science",
	"Artificial Intelligence",
	"Software Engineering",
	"Cybersecurity",
	"Electronics",
	"Mechanical Engineering",
	"Civil Engineering",
	"Business Administration",
}

// IsValidSpeciality checks membership in the fixed speciality list
func IsValidSpeciality(s string) bool {
	for _, known := range Specialities {
		if known == s {
			return true
		}
	}
	return false
}
