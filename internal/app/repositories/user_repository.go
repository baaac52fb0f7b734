package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/db"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/dberrors"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// CreateStudentAccount inserts the user row and its student profile in
// one transaction. Returns the new student id.
func (r *UserRepository) CreateStudentAccount(ctx context.Context, user *models.User, speciality string) (int64, error) {
	var studentID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, role, name)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`,
			user.Email, user.Password, models.RoleStudent, user.Name,
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return err
		}
		user.RoleType = models.RoleStudent

		return tx.QueryRow(ctx, `
			INSERT INTO students (user_id, speciality)
			VALUES ($1, $2)
			RETURNING id`,
			user.ID, speciality,
		).Scan(&studentID)
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating student account: %w", err)
	}

	return studentID, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, role, name, created_at
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Email, &user.Password, &user.RoleType, &user.Name, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password, role, name, created_at
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Email, &user.Password, &user.RoleType, &user.Name, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// EmailExists checks whether an email is already taken by a user other
// than excludeID. Pass 0 to check against all users.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)`,
		email, excludeID,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// CreateUniversity inserts a university-role user
func (r *UserRepository) CreateUniversity(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, role, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		user.Email, user.Password, models.RoleUniversity, user.Name,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating university: %w", err)
	}
	user.RoleType = models.RoleUniversity

	return nil
}

// UpdateUniversity updates a university-role user's name and email, and
// optionally its password when a new hash is provided.
func (r *UserRepository) UpdateUniversity(ctx context.Context, id int64, name, email string, passwordHash *string) error {
	query := `UPDATE users SET name = $1, email = $2 WHERE id = $3 AND role = $4`
	args := []interface{}{name, email, id, models.RoleUniversity}

	if passwordHash != nil {
		query = `UPDATE users SET name = $1, email = $2, password = $3 WHERE id = $4 AND role = $5`
		args = []interface{}{name, email, *passwordHash, id, models.RoleUniversity}
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// DeleteUniversity deletes a university-role user by id
func (r *UserRepository) DeleteUniversity(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		DELETE FROM users WHERE id = $1 AND role = $2`,
		id, models.RoleUniversity,
	)
	if err != nil {
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// ListUniversities retrieves all university-role users
func (r *UserRepository) ListUniversities(ctx context.Context) ([]*models.University, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email
		FROM users
		WHERE role = $1
		ORDER BY name`,
		models.RoleUniversity,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing universities: %w", err)
	}
	defer rows.Close()

	var universities []*models.University
	for rows.Next() {
		var uni models.University
		if err := rows.Scan(&uni.ID, &uni.Name, &uni.Email); err != nil {
			return nil, err
		}
		universities = append(universities, &uni)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return universities, nil
}
