package usecase

import (
	"context"
	"errors"
	"log"

	"linktern/internal/domain/account"
	"linktern/internal/pkg/jwt"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

// Profile is the role-shaped view returned to a signed-in user.
type Profile struct {
	Identity account.Identity
	Role     account.Role

	Student *account.StudentProfile
	Company *account.CompanyProfile
	// CompanyID is set only for employers.
	CompanyID string
}

type SessionUsecase interface {
	SignIn(ctx context.Context, email, password string) (account.Session, error)
	SignOut(ctx context.Context, token string) error
	Refresh(ctx context.Context, refreshToken string) (account.Session, error)
	Me(ctx context.Context, identityID string) (Profile, error)
}

type Sessions struct {
	dir      account.Directory
	profiles account.ProfileReader
	jwt      jwt.Service
	logger   *log.Logger
}

func NewSessionUsecase(dir account.Directory, profiles account.ProfileReader, jwtSvc jwt.Service, logger *log.Logger) *Sessions {
	return &Sessions{dir: dir, profiles: profiles, jwt: jwtSvc, logger: logger}
}

func (s *Sessions) SignIn(ctx context.Context, email, password string) (account.Session, error) {
	return s.dir.SignIn(ctx, email, password)
}

// SignOut always reports success. The revocation is handed to the directory
// best-effort; a lost signal is logged and swallowed so the client can
// always clear its local state.
func (s *Sessions) SignOut(ctx context.Context, token string) error {
	if err := s.dir.SignOut(ctx, token); err != nil && s.logger != nil {
		s.logger.Printf("[Session] sign-out signal lost | err=%v", err)
	}
	return nil
}

func (s *Sessions) Refresh(ctx context.Context, refreshToken string) (account.Session, error) {
	if refreshToken == "" {
		return account.Session{}, ErrUnauthorized
	}

	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return account.Session{}, ErrRefreshTokenExpired
		}
		return account.Session{}, ErrInvalidRefreshToken
	}
	if !s.jwt.IsRefreshToken(claims) {
		return account.Session{}, ErrInvalidRefreshToken
	}

	identity, role, err := s.profiles.GetIdentity(ctx, claims.UserID)
	if err != nil {
		return account.Session{}, ErrInternal
	}

	access, err := s.jwt.GenerateAccessToken(identity.ID, identity.Email, role)
	if err != nil {
		return account.Session{}, ErrInternal
	}
	refresh, err := s.jwt.GenerateRefreshToken(identity.ID)
	if err != nil {
		return account.Session{}, ErrInternal
	}

	return account.Session{Identity: identity, AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Sessions) Me(ctx context.Context, identityID string) (Profile, error) {
	identity, role, err := s.profiles.GetIdentity(ctx, identityID)
	if err != nil {
		return Profile{}, ErrUnauthorized
	}

	p := Profile{Identity: identity, Role: role}
	switch role {
	case account.RoleStudent:
		student, err := s.profiles.GetStudentProfile(ctx, identityID)
		if err != nil {
			return Profile{}, ErrInternal
		}
		p.Student = &student
	case account.RoleEmployer:
		company, companyID, err := s.profiles.GetCompanyProfile(ctx, identityID)
		if err != nil {
			return Profile{}, ErrInternal
		}
		p.Company = &company
		p.CompanyID = companyID
	}

	return p, nil
}
