package services

import (
	"context"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
)

// masterStore is the persistence surface MasterService needs from the
// master repository.
type masterStore interface {
	List(ctx context.Context, speciality string) ([]*models.Master, error)
	ListByUniversity(ctx context.Context, universityID int64) ([]*models.Master, error)
	CreateWithSpecialities(ctx context.Context, master *models.Master, specialities []string) error
	Delete(ctx context.Context, id, universityID int64) error
}

// universityLister retrieves the university directory
type universityLister interface {
	ListUniversities(ctx context.Context) ([]*models.University, error)
}

// reviewLister retrieves the applications of one program with the
// applicant details reviewers need.
type reviewLister interface {
	ListByMaster(ctx context.Context, masterID int64) ([]*models.Application, error)
}

// MasterService implements the program directory and program
// management.
type MasterService struct {
	masters      masterStore
	universities universityLister
	reviews      reviewLister
}

// NewMasterService creates a new master's program service
func NewMasterService(masters masterStore, universities universityLister, reviews reviewLister) *MasterService {
	return &MasterService{
		masters:      masters,
		universities: universities,
		reviews:      reviews,
	}
}

// ListMasters retrieves the program directory, optionally narrowed to
// programs tagged with one speciality. Every program carries its full
// speciality list, its live application count and the owning
// university's contact email.
func (s *MasterService) ListMasters(ctx context.Context, speciality string) ([]*models.Master, error) {
	masters, err := s.masters.List(ctx, speciality)
	if err != nil {
		return nil, err
	}

	for _, m := range masters {
		if m.Specialities == nil {
			m.Specialities = []string{}
		}
	}

	return masters, nil
}

// ListByUniversity retrieves the programs owned by one university
func (s *MasterService) ListByUniversity(ctx context.Context, universityID int64) ([]*models.Master, error) {
	return s.masters.ListByUniversity(ctx, universityID)
}

// ListUniversitiesWithMasters builds the super-admin directory:
// universities with their programs nested, each program carrying its
// applications with the applicant's marks, score and transcript.
func (s *MasterService) ListUniversitiesWithMasters(ctx context.Context) ([]*models.University, error) {
	universities, err := s.universities.ListUniversities(ctx)
	if err != nil {
		return nil, err
	}

	for _, uni := range universities {
		masters, err := s.masters.ListByUniversity(ctx, uni.ID)
		if err != nil {
			return nil, err
		}
		for _, m := range masters {
			apps, err := s.reviews.ListByMaster(ctx, m.ID)
			if err != nil {
				return nil, err
			}
			m.Applications = apps
		}
		uni.Masters = masters
	}

	return universities, nil
}

// CreateMaster validates and creates a program with its speciality
// tags. The insert is all-or-nothing: a failing tag rolls the program
// back.
func (s *MasterService) CreateMaster(ctx context.Context, master *models.Master, specialities []string) error {
	if !master.ApplicationEndDate.After(master.ApplicationStartDate) {
		return apperrors.ErrInvalidDateRange
	}
	if len(specialities) == 0 {
		return apperrors.ErrNoSpecialities
	}
	for _, speciality := range specialities {
		if !models.IsValidSpeciality(speciality) {
			return apperrors.NewCustomError(apperrors.ErrInvalidSpeciality, "unknown speciality: "+speciality)
		}
	}

	if err := s.masters.CreateWithSpecialities(ctx, master, specialities); err != nil {
		return err
	}

	logger.Info().Int64("masterId", master.ID).Int64("universityId", master.UniversityID).Msg("Program created")
	return nil
}

// DeleteMaster removes a program owned by the university. Speciality
// tags and applications are removed with it.
func (s *MasterService) DeleteMaster(ctx context.Context, id, universityID int64) error {
	return s.masters.Delete(ctx, id, universityID)
}
