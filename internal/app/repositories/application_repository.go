package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/dberrors"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

// Exists reports whether the student has already applied to the program
func (r *ApplicationRepository) Exists(ctx context.Context, studentID, masterID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE student_id = $1 AND master_id = $2)`,
		studentID, masterID,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}

	return exists, nil
}

// Create inserts a pending application. The unique pair constraint
// backs up the existence check against concurrent submissions.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO applications (student_id, master_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		app.StudentID, app.MasterID, models.StatusPending,
	).Scan(&app.ID, &app.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_id_master_id_key") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	app.Status = models.StatusPending
	return nil
}

// UpdateStatus sets the decision on an application owned by one of the
// university's programs.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, universityID int64, status models.ApplicationStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE applications a
		SET status = $1
		FROM masters m
		WHERE a.id = $2 AND a.master_id = m.id AND m.university_id = $3`,
		status, id, universityID,
	)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// GetDecisionContact retrieves the applicant's email and the program
// name for a decision notification.
func (r *ApplicationRepository) GetDecisionContact(ctx context.Context, id int64) (email, masterName string, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT u.email, m.name
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN users u ON u.id = s.user_id
		JOIN masters m ON m.id = a.master_id
		WHERE a.id = $1`,
		id,
	).Scan(&email, &masterName)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", apperrors.ErrApplicationNotFound
		}
		return "", "", fmt.Errorf("error retrieving application contact: %w", err)
	}

	return email, masterName, nil
}

// ListByStudent retrieves a student's applications with the program
// name attached, newest first.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.master_id, a.status, a.created_at, m.name
		FROM applications a
		JOIN masters m ON m.id = a.master_id
		WHERE a.student_id = $1
		ORDER BY a.created_at DESC`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing student applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		var app models.Application
		if err := rows.Scan(&app.ID, &app.StudentID, &app.MasterID,
			&app.Status, &app.CreatedAt, &app.MasterName); err != nil {
			return nil, err
		}
		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// ListByMaster retrieves the review queue for one program: each
// application with the applicant's email, speciality, marks, score and
// transcript path.
func (r *ApplicationRepository) ListByMaster(ctx context.Context, masterID int64) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.master_id, a.status, a.created_at,
		       u.email, s.speciality,
		       s.first_year_mark, s.second_year_mark, s.third_year_mark,
		       s.calculated_score, s.transcript_pdf
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN users u ON u.id = s.user_id
		WHERE a.master_id = $1
		ORDER BY a.created_at DESC`,
		masterID,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing program applications: %w", err)
	}
	defer rows.Close()

	return scanReviewRows(rows, false)
}

// ListAll retrieves every application with both program and applicant
// context, newest first.
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*models.Application, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.student_id, a.master_id, a.status, a.created_at,
		       u.email, s.speciality,
		       s.first_year_mark, s.second_year_mark, s.third_year_mark,
		       s.calculated_score, s.transcript_pdf,
		       m.name,
		       COALESCE((SELECT array_agg(ms.speciality) FROM master_specialities ms WHERE ms.master_id = m.id), '{}')
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN users u ON u.id = s.user_id
		JOIN masters m ON m.id = a.master_id
		ORDER BY a.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	return scanReviewRows(rows, true)
}

func scanReviewRows(rows pgx.Rows, withMaster bool) ([]*models.Application, error) {
	var apps []*models.Application
	for rows.Next() {
		var app models.Application
		dest := []interface{}{
			&app.ID, &app.StudentID, &app.MasterID, &app.Status, &app.CreatedAt,
			&app.StudentEmail, &app.StudentSpeciality,
			&app.FirstYearMark, &app.SecondYearMark, &app.ThirdYearMark,
			&app.CalculatedScore, &app.TranscriptPDF,
		}
		if withMaster {
			dest = append(dest, &app.MasterName, &app.MasterSpecialities)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}
