package usecase

import (
	"context"
	"errors"

	"linktern/internal/repository"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type SavedInternshipUsecase interface {
	Toggle(ctx context.Context, studentID string, internshipID uuid.UUID) (bool, error)
	List(ctx context.Context, studentID string) ([]repository.Internship, error)
}

type SavedInternships struct {
	saved       repository.SavedInternshipRepository
	internships repository.InternshipRepository
}

func NewSavedInternshipUsecase(saved repository.SavedInternshipRepository, internships repository.InternshipRepository) *SavedInternships {
	return &SavedInternships{saved: saved, internships: internships}
}

func (u *SavedInternships) Toggle(ctx context.Context, studentID string, internshipID uuid.UUID) (bool, error) {
	exists, err := u.internships.ExistsByID(ctx, internshipID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrNotFound
	}
	return u.saved.Toggle(ctx, studentID, internshipID)
}

func (u *SavedInternships) List(ctx context.Context, studentID string) ([]repository.Internship, error) {
	return u.saved.ListByStudent(ctx, studentID)
}
