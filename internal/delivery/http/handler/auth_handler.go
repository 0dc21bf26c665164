package handler

import (
	"errors"

	"linktern/internal/delivery/http/middleware"
	"linktern/internal/domain/account"
	"linktern/internal/pkg/response"
	"linktern/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	provision usecase.ProvisionUsecase
	sessions  usecase.SessionUsecase
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthHandler(provision usecase.ProvisionUsecase, sessions usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{provision: provision, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/signup", h.SignUp)
	r.Post("/signin", h.SignIn)
	r.Post("/refresh", h.Refresh)
	r.Post("/signout", h.SignOut, authMw.Middleware())
}

func (h *AuthHandler) SignUp(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in, err := provisionInputFromRequest(req)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	}

	identity, err := h.provision.Provision(c.Context(), in)
	if err != nil {
		return mapProvisionError(err)
	}

	return response.Success(c, fiber.StatusCreated, "account created", identity)
}

func (h *AuthHandler) SignIn(c fiber.Ctx) error {
	var req signinRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sess, err := h.sessions.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, sess)
}

// SignOut never fails from the client's point of view.
func (h *AuthHandler) SignOut(c fiber.Ctx) error {
	token, _ := c.Locals(middleware.CtxTokenKey).(string)
	_ = h.sessions.SignOut(c.Context(), token)
	return response.Success(c, fiber.StatusOK, "signed out", nil)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	token, ok := middleware.BearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	sess, err := h.sessions.Refresh(c.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRefreshTokenExpired):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
		case errors.Is(err, usecase.ErrInvalidRefreshToken), errors.Is(err, usecase.ErrUnauthorized):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, sess)
}

// mapProvisionError surfaces the failing step's own message: the directory is
// the authority on credential validity, and a partial signup reports exactly
// which table write refused.
func mapProvisionError(err error) error {
	var credErr *account.CredentialError
	if errors.As(err, &credErr) {
		status := fiber.StatusBadRequest
		if credErr.Reason == account.ReasonEmailTaken {
			status = fiber.StatusConflict
		}
		return middleware.NewAppError(status, credErr.Error(), map[string]any{"reason": credErr.Reason}, err)
	}

	var writeErr *account.WriteError
	if errors.As(err, &writeErr) {
		return middleware.NewAppError(
			fiber.StatusUnprocessableEntity,
			writeErr.Error(),
			map[string]any{"stage": writeErr.Table},
			err,
		)
	}

	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
