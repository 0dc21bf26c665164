package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"linktern/internal/repository"

	"github.com/google/uuid"
)

var ErrAlreadyApplied = errors.New("already applied")

type SubmitApplicationInput struct {
	InternshipID uuid.UUID
	StudentID    string
	CoverLetter  string
}

// ApplicationNotifier pushes an event to connected clients after a
// successful submission. Delivery is fire-and-forget.
type ApplicationNotifier interface {
	NotifyApplicationSubmitted(internship repository.Internship)
}

type ApplicationUsecase interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (repository.Application, error)
	ListMine(ctx context.Context, studentID string) ([]repository.Application, error)
}

type Applications struct {
	apps        repository.ApplicationRepository
	internships repository.InternshipRepository
	notifier    ApplicationNotifier
	logger      *log.Logger
}

func NewApplicationUsecase(apps repository.ApplicationRepository, internships repository.InternshipRepository, notifier ApplicationNotifier, logger *log.Logger) *Applications {
	return &Applications{apps: apps, internships: internships, notifier: notifier, logger: logger}
}

func (u *Applications) Submit(ctx context.Context, in SubmitApplicationInput) (repository.Application, error) {
	if in.StudentID == "" || in.InternshipID == uuid.Nil {
		return repository.Application{}, ErrInvalidInput
	}

	internship, err := u.internships.GetByID(ctx, in.InternshipID)
	if err != nil {
		if errors.Is(err, repository.ErrInternshipNotFound) {
			return repository.Application{}, ErrNotFound
		}
		return repository.Application{}, err
	}

	app := repository.Application{
		ID:           uuid.New(),
		InternshipID: in.InternshipID,
		StudentID:    in.StudentID,
		CoverLetter:  strings.TrimSpace(in.CoverLetter),
		Status:       "submitted",
	}

	if err := u.apps.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return repository.Application{}, ErrAlreadyApplied
		}
		return repository.Application{}, err
	}

	if u.notifier != nil {
		u.notifier.NotifyApplicationSubmitted(internship)
	}
	if u.logger != nil {
		u.logger.Printf("[Applications] submitted | internship=%s student=%s", in.InternshipID, in.StudentID)
	}

	return app, nil
}

func (u *Applications) ListMine(ctx context.Context, studentID string) ([]repository.Application, error) {
	return u.apps.ListByStudent(ctx, studentID)
}
