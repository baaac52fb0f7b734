package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/GHAITHBT/Projet-Master-2025/internal/app/models"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/apperrors"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/filestorage"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/validation"
)

// studentStore is the persistence surface StudentService needs from
// the student repository.
type studentStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	UpdateMarks(ctx context.Context, userID int64, first, second, third *float64, score float64) error
	UpdateTranscript(ctx context.Context, userID int64, path string) error
}

// StudentService handles student profile operations
type StudentService struct {
	students studentStore
	storage  filestorage.FileStorage
}

// NewStudentService creates a new student service
func NewStudentService(students studentStore, storage filestorage.FileStorage) *StudentService {
	return &StudentService{
		students: students,
		storage:  storage,
	}
}

// GetProfile retrieves the student profile for a user
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*models.Student, error) {
	return s.students.GetByUserID(ctx, userID)
}

// UpdateMarks stores the yearly marks and the score derived from them.
// The score is never written on its own; it always comes out of the
// marks being persisted here.
func (s *StudentService) UpdateMarks(ctx context.Context, userID int64, first, second, third *float64) (float64, error) {
	for _, mark := range []*float64{first, second, third} {
		if mark != nil && (*mark < validation.MarkMin || *mark > validation.MarkMax) {
			return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed,
				fmt.Sprintf("marks must be between %g and %g", validation.MarkMin, validation.MarkMax))
		}
	}

	score := CalculateScore(first, second, third)
	if err := s.students.UpdateMarks(ctx, userID, first, second, third, score); err != nil {
		return 0, err
	}

	logger.Info().Int64("userId", userID).Float64("score", score).Msg("Student marks updated")
	return score, nil
}

// UploadTranscript validates and stores a transcript PDF, then records
// its path on the profile. Only PDF files up to the size limit are
// accepted.
func (s *StudentService) UploadTranscript(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.ErrTranscriptRequired
	}
	if fileHeader.Size > validation.TranscriptMaxBytes {
		return "", apperrors.ErrFileTooLarge
	}
	if !isPDF(fileHeader) {
		return "", apperrors.ErrInvalidFileType
	}

	path, err := s.storage.SaveFileWithPath(fileHeader, "transcripts")
	if err != nil {
		return "", fmt.Errorf("failed to store transcript: %w", err)
	}

	if err := s.students.UpdateTranscript(ctx, userID, path); err != nil {
		return "", err
	}

	logger.Info().Int64("userId", userID).Str("path", path).Msg("Transcript uploaded")
	return path, nil
}

func isPDF(fileHeader *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf") {
		return true
	}
	return fileHeader.Header.Get("Content-Type") == validation.TranscriptContentType
}
