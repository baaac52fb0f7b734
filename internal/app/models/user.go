package models

import "time"

// User defines the user model based on the 'users' table.
// A student-role user owns exactly one Student profile; a
// university-role user owns zero or more Masters.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"student@mail.com"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, never serialized
	Name      string    `json:"name" db:"name" example:"Amine Ben Salah"`
	RoleType  RoleType  `json:"roleType" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// University is the public projection of a university-role user,
// used by the super-admin directory view.
type University struct {
	ID      int64     `json:"id" db:"id"`
	Name    string    `json:"name" db:"name"`
	Email   string    `json:"email" db:"email"`
	Masters []*Master `json:"masters,omitempty"` // Relation, no db tag
}
