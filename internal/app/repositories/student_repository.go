package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
)

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByUserID retrieves a student profile by the owning user's id
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, speciality, first_year_mark, second_year_mark,
		       third_year_mark, calculated_score, transcript_pdf
		FROM students
		WHERE user_id = $1`,
		userID,
	).Scan(&student.ID, &student.UserID, &student.Speciality,
		&student.FirstYearMark, &student.SecondYearMark, &student.ThirdYearMark,
		&student.CalculatedScore, &student.TranscriptPDF)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &student, nil
}

// GetByID retrieves a student profile by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, speciality, first_year_mark, second_year_mark,
		       third_year_mark, calculated_score, transcript_pdf
		FROM students
		WHERE id = $1`,
		id,
	).Scan(&student.ID, &student.UserID, &student.Speciality,
		&student.FirstYearMark, &student.SecondYearMark, &student.ThirdYearMark,
		&student.CalculatedScore, &student.TranscriptPDF)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &student, nil
}

// UpdateMarks stores the yearly marks and the derived score for the
// student owned by userID.
func (r *StudentRepository) UpdateMarks(ctx context.Context, userID int64, first, second, third *float64, score float64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET first_year_mark = $1, second_year_mark = $2,
		    third_year_mark = $3, calculated_score = $4
		WHERE user_id = $5`,
		first, second, third, score, userID,
	)
	if err != nil {
		return fmt.Errorf("error updating student marks: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateTranscript stores the transcript file path for the student
// owned by userID.
func (r *StudentRepository) UpdateTranscript(ctx context.Context, userID int64, path string) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET transcript_pdf = $1
		WHERE user_id = $2`,
		path, userID,
	)
	if err != nil {
		return fmt.Errorf("error updating student transcript: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
