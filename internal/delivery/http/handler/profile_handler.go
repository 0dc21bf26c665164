package handler

import (
	"linktern/internal/delivery/http/dto"
	"linktern/internal/delivery/http/middleware"
	"linktern/internal/pkg/response"
	"linktern/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	sessions usecase.SessionUsecase
}

func NewProfileHandler(sessions usecase.SessionUsecase) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me", h.Me)
}

func (h *ProfileHandler) Me(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(string)
	if userID == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.sessions.Me(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	}

	out := dto.MeResponse{
		ID:    p.Identity.ID,
		Email: p.Identity.Email,
		Role:  string(p.Role),
	}
	if p.Student != nil {
		out.Student = &dto.StudentProfileResponse{
			FirstName:          p.Student.FirstName,
			LastName:           p.Student.LastName,
			Phone:              p.Student.Phone,
			University:         p.Student.University,
			Major:              p.Student.Major,
			ExpectedGraduation: p.Student.ExpectedGraduation,
			GPA:                p.Student.GPA,
			Bio:                p.Student.Bio,
			Skills:             p.Student.Skills,
			LinkedinProfile:    p.Student.LinkedinProfile,
			PortfolioWebsite:   p.Student.PortfolioWebsite,
			ResumeURL:          p.Student.ResumeURL,
			City:               p.Student.City,
			Country:            p.Student.Country,
		}
	}
	if p.Company != nil {
		out.Company = &dto.CompanyProfileResponse{
			CompanyID:    p.CompanyID,
			CompanyName:  p.Company.CompanyName,
			Industry:     p.Company.Industry,
			CompanySize:  p.Company.CompanySize,
			Website:      p.Company.Website,
			Description:  p.Company.Description,
			Address:      p.Company.Address,
			City:         p.Company.City,
			LinkedinPage: p.Company.LinkedinPage,
			LogoURL:      p.Company.LogoURL,
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
