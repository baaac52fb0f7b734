package services

import (
	"context"
	"fmt"
	"time"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/email"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/helpers"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
)

// applicationStore is the persistence surface AdmissionService needs
// from the application repository.
type applicationStore interface {
	Exists(ctx context.Context, studentID, masterID int64) (bool, error)
	Create(ctx context.Context, app *models.Application) error
	UpdateStatus(ctx context.Context, id, universityID int64, status models.ApplicationStatus) error
	GetDecisionContact(ctx context.Context, id int64) (email, masterName string, err error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Application, error)
	ListAll(ctx context.Context) ([]*models.Application, error)
}

// programFinder resolves programs and their speciality tags
type programFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Master, error)
	GetSpecialities(ctx context.Context, masterID int64) ([]string, error)
}

// applicantFinder resolves student profiles by profile id
type applicantFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// AdmissionService implements the application workflow: eligibility
// checking, submission and the review decision lifecycle.
type AdmissionService struct {
	applications applicationStore
	masters      programFinder
	students     applicantFinder
	notifier     email.Notifier
	now          func() time.Time
}

// NewAdmissionService creates a new admission service
func NewAdmissionService(applications applicationStore, masters programFinder, students applicantFinder, notifier email.Notifier) *AdmissionService {
	return &AdmissionService{
		applications: applications,
		masters:      masters,
		students:     students,
		notifier:     notifier,
		now:          time.Now,
	}
}

// Apply runs the eligibility checks in order and creates a pending
// application when all pass. The checks short-circuit: the first
// failure is returned and no later check runs.
func (s *AdmissionService) Apply(ctx context.Context, studentID, masterID int64) (*models.Application, error) {
	exists, err := s.applications.Exists(ctx, studentID, masterID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	master, err := s.masters.GetByID(ctx, masterID)
	if err != nil {
		return nil, err
	}

	if !helpers.WithinDateRange(s.now(), master.ApplicationStartDate, master.ApplicationEndDate) {
		return nil, apperrors.ErrApplicationClosed
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	specialities, err := s.masters.GetSpecialities(ctx, masterID)
	if err != nil {
		return nil, err
	}
	if !containsSpeciality(specialities, student.Speciality) {
		return nil, apperrors.NewCustomError(apperrors.ErrIneligibleSpeciality,
			fmt.Sprintf("speciality %q is not eligible for %q", student.Speciality, master.Name))
	}

	app := &models.Application{
		StudentID: studentID,
		MasterID:  masterID,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", studentID).Int64("masterId", masterID).Msg("Application submitted")
	return app, nil
}

// UpdateStatus records a review decision on an application owned by
// one of the university's programs and notifies the applicant. The
// notification is best effort: a delivery failure never surfaces, and
// a decision may overwrite an earlier one.
func (s *AdmissionService) UpdateStatus(ctx context.Context, id, universityID int64, status models.ApplicationStatus) error {
	if !status.IsDecision() {
		return apperrors.ErrInvalidStatus
	}

	if err := s.applications.UpdateStatus(ctx, id, universityID, status); err != nil {
		return err
	}

	toEmail, masterName, err := s.applications.GetDecisionContact(ctx, id)
	if err != nil {
		logger.Warn().Err(err).Int64("applicationId", id).Msg("Could not resolve applicant contact for decision notification")
		return nil
	}

	s.notifier.Dispatch(toEmail,
		"Application status update",
		fmt.Sprintf("Your application to %s has been %s.", masterName, status))

	return nil
}

// ListStudentApplications retrieves a student's applications with the
// program name attached.
func (s *AdmissionService) ListStudentApplications(ctx context.Context, studentID int64) ([]*models.Application, error) {
	return s.applications.ListByStudent(ctx, studentID)
}

// ListAllApplications retrieves the flat review list over every
// program, with applicant marks, score and transcript reference.
func (s *AdmissionService) ListAllApplications(ctx context.Context) ([]*models.Application, error) {
	return s.applications.ListAll(ctx)
}

func containsSpeciality(specialities []string, speciality string) bool {
	for _, s := range specialities {
		if s == speciality {
			return true
		}
	}
	return false
}
