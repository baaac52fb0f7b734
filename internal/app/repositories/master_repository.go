package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/db"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
)

// MasterRepository handles database operations for master's programs
type MasterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMasterRepository creates a new master's program repository
func NewMasterRepository(db *pgxpool.Pool) *MasterRepository {
	return &MasterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// directorySelect is the shared base query for program listings: each
// row carries the program, its speciality tags, the live application
// count and the owning university's contact email.
func (r *MasterRepository) directorySelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"m.id", "m.university_id", "m.name", "m.description", "m.max_students",
		"m.application_start_date", "m.application_end_date",
		"u.email AS university_email",
		"COALESCE(array_agg(ms.speciality) FILTER (WHERE ms.speciality IS NOT NULL), '{}') AS specialities",
		"(SELECT COUNT(*) FROM applications a WHERE a.master_id = m.id) AS application_count",
	).
		From("masters m").
		Join("users u ON u.id = m.university_id").
		LeftJoin("master_specialities ms ON ms.master_id = m.id").
		GroupBy("m.id", "u.email").
		OrderBy("m.name")
}

func scanDirectoryRows(rows pgx.Rows) ([]*models.Master, error) {
	var masters []*models.Master
	for rows.Next() {
		var m models.Master
		if err := rows.Scan(&m.ID, &m.UniversityID, &m.Name, &m.Description,
			&m.MaxStudents, &m.ApplicationStartDate, &m.ApplicationEndDate,
			&m.UniversityEmail, &m.Specialities, &m.ApplicationCount); err != nil {
			return nil, err
		}
		masters = append(masters, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return masters, nil
}

// List retrieves all programs, optionally narrowed to those tagged with
// the given speciality. An empty speciality returns everything.
func (r *MasterRepository) List(ctx context.Context, speciality string) ([]*models.Master, error) {
	query := r.directorySelect()
	if speciality != "" {
		query = query.Where(squirrel.Expr(
			"EXISTS(SELECT 1 FROM master_specialities fs WHERE fs.master_id = m.id AND fs.speciality = ?)",
			speciality,
		))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building program list SQL")
		return nil, fmt.Errorf("failed to build program list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}
	defer rows.Close()

	return scanDirectoryRows(rows)
}

// ListByUniversity retrieves all programs owned by a university
func (r *MasterRepository) ListByUniversity(ctx context.Context, universityID int64) ([]*models.Master, error) {
	sql, args, err := r.directorySelect().
		Where(squirrel.Eq{"m.university_id": universityID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building university program list SQL")
		return nil, fmt.Errorf("failed to build university program list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing university programs: %w", err)
	}
	defer rows.Close()

	return scanDirectoryRows(rows)
}

// GetByID retrieves a single program without annotations
func (r *MasterRepository) GetByID(ctx context.Context, id int64) (*models.Master, error) {
	var m models.Master
	err := r.db.QueryRow(ctx, `
		SELECT id, university_id, name, description, max_students,
		       application_start_date, application_end_date
		FROM masters
		WHERE id = $1`,
		id,
	).Scan(&m.ID, &m.UniversityID, &m.Name, &m.Description, &m.MaxStudents,
		&m.ApplicationStartDate, &m.ApplicationEndDate)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMasterNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	return &m, nil
}

// GetSpecialities retrieves the speciality tags of a program
func (r *MasterRepository) GetSpecialities(ctx context.Context, masterID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT speciality
		FROM master_specialities
		WHERE master_id = $1
		ORDER BY speciality`,
		masterID,
	)
	if err != nil {
		return nil, fmt.Errorf("error retrieving program specialities: %w", err)
	}
	defer rows.Close()

	var specialities []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		specialities = append(specialities, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return specialities, nil
}

// CreateWithSpecialities inserts a program and its speciality tags in
// one transaction. A failed tag insert rolls back the program row.
func (r *MasterRepository) CreateWithSpecialities(ctx context.Context, master *models.Master, specialities []string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO masters (university_id, name, description, max_students,
			                     application_start_date, application_end_date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			master.UniversityID, master.Name, master.Description, master.MaxStudents,
			master.ApplicationStartDate, master.ApplicationEndDate,
		).Scan(&master.ID)
		if err != nil {
			return err
		}

		for _, speciality := range specialities {
			if _, err := tx.Exec(ctx, `
				INSERT INTO master_specialities (master_id, speciality)
				VALUES ($1, $2)`,
				master.ID, speciality,
			); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("error creating program: %w", err)
	}

	master.Specialities = specialities
	return nil
}

// Delete removes a program owned by the given university. Speciality
// tags go with it through the cascade.
func (r *MasterRepository) Delete(ctx context.Context, id, universityID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM masters WHERE id = $1 AND university_id = $2`,
		id, universityID,
	)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMasterNotFound
	}

	return nil
}
