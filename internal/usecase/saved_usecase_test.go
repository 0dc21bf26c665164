package usecase

import (
	"context"
	"errors"
	"testing"

	"linktern/internal/repository"

	"github.com/google/uuid"
)

type mockSavedRepo struct {
	saved map[uuid.UUID]bool
}

func newMockSavedRepo() *mockSavedRepo {
	return &mockSavedRepo{saved: make(map[uuid.UUID]bool)}
}

func (m *mockSavedRepo) Toggle(_ context.Context, _ string, id uuid.UUID) (bool, error) {
	m.saved[id] = !m.saved[id]
	return m.saved[id], nil
}

func (m *mockSavedRepo) ListByStudent(context.Context, string) ([]repository.Internship, error) {
	out := make([]repository.Internship, 0)
	for id, on := range m.saved {
		if on {
			out = append(out, repository.Internship{ID: id})
		}
	}
	return out, nil
}

func TestSavedToggle_RoundTrip(t *testing.T) {
	id := uuid.New()
	uc := NewSavedInternshipUsecase(newMockSavedRepo(), &mockInternshipRepo{exists: true})

	on, err := uc.Toggle(context.Background(), "id-1", id)
	if err != nil || !on {
		t.Fatalf("first toggle should save: %v %v", on, err)
	}
	off, err := uc.Toggle(context.Background(), "id-1", id)
	if err != nil || off {
		t.Fatalf("second toggle should unsave: %v %v", off, err)
	}
}

func TestSavedToggle_UnknownInternship(t *testing.T) {
	uc := NewSavedInternshipUsecase(newMockSavedRepo(), &mockInternshipRepo{exists: false})
	if _, err := uc.Toggle(context.Background(), "id-1", uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
