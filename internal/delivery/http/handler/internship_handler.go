package handler

import (
	"errors"
	"strconv"
	"time"

	"linktern/internal/delivery/http/dto"
	"linktern/internal/delivery/http/middleware"
	"linktern/internal/pkg/response"
	"linktern/internal/repository"
	"linktern/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type InternshipHandler struct {
	internships usecase.InternshipUsecase
	saved       usecase.SavedInternshipUsecase
}

func NewInternshipHandler(internships usecase.InternshipUsecase, saved usecase.SavedInternshipUsecase) *InternshipHandler {
	return &InternshipHandler{internships: internships, saved: saved}
}

func (h *InternshipHandler) List(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.internships.List(c.Context(), usecase.InternshipListParams{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.InternshipResponse, 0, len(items))
	for _, it := range items {
		out = append(out, internshipResponseFrom(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *InternshipHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	it, err := h.internships.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrInternshipNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, internshipResponseFrom(it))
}

func (h *InternshipHandler) ToggleSave(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(string)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	saved, err := h.saved.Toggle(c.Context(), userID, id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"saved": saved})
}

func (h *InternshipHandler) ListSaved(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(string)

	items, err := h.saved.List(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.InternshipResponse, 0, len(items))
	for _, it := range items {
		resp := internshipResponseFrom(it)
		resp.Saved = true
		out = append(out, resp)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func internshipResponseFrom(it repository.Internship) dto.InternshipResponse {
	posted := ""
	if it.PostedAt != nil && !it.PostedAt.IsZero() {
		posted = it.PostedAt.UTC().Format(time.RFC3339)
	}

	return dto.InternshipResponse{
		ID:           it.ID,
		Title:        it.Title,
		Company:      it.Company,
		Location:     it.Location,
		Type:         it.Type,
		Duration:     it.Duration,
		Salary:       it.Salary,
		Description:  it.Description,
		Skills:       it.Skills,
		PostedDate:   posted,
		Applications: it.Applications,
		Logo:         it.Logo,
	}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
