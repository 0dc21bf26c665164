package handler

import (
	"errors"
	"time"

	"linktern/internal/delivery/http/dto"
	"linktern/internal/delivery/http/middleware"
	"linktern/internal/pkg/response"
	"linktern/internal/repository"
	"linktern/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	apps usecase.ApplicationUsecase
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

func NewApplicationHandler(apps usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(string)

	internshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	app, err := h.apps.Submit(c.Context(), usecase.SubmitApplicationInput{
		InternshipID: internshipID,
		StudentID:    userID,
		CoverLetter:  req.CoverLetter,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		case errors.Is(err, usecase.ErrAlreadyApplied):
			return middleware.NewAppError(fiber.StatusConflict, "Already applied", nil, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusCreated, "application submitted", applicationResponseFrom(app))
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(string)

	apps, err := h.apps.ListMine(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, applicationResponseFrom(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func applicationResponseFrom(a repository.Application) dto.ApplicationResponse {
	submitted := ""
	if !a.CreatedAt.IsZero() {
		submitted = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto.ApplicationResponse{
		ID:           a.ID,
		InternshipID: a.InternshipID,
		CoverLetter:  a.CoverLetter,
		ResumeURL:    a.ResumeURL,
		Status:       a.Status,
		SubmittedAt:  submitted,
	}
}
