package account

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleEmployer:
		return RoleEmployer, nil
	default:
		return "", ErrUnknownRole
	}
}

// DefaultCountry is applied when a student signs up without a country.
const DefaultCountry = "Saudi Arabia"

// Identity is the authentication-layer record held by the directory. The ID
// is opaque to everything outside the directory implementation.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	Identity     Identity `json:"identity"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

type StudentProfile struct {
	FirstName          string
	LastName           string
	Phone              string
	University         string
	Major              string
	ExpectedGraduation string
	GPA                *float64
	Bio                string
	Skills             []string
	LinkedinProfile    *string
	PortfolioWebsite   *string
	// ResumeURL stays nil at signup; a separate upload flow fills it later.
	ResumeURL *string
	City      *string
	Country   string
}

type CompanyProfile struct {
	CompanyName  string
	Industry     string
	CompanySize  string
	Website      string
	Description  string
	Address      string
	City         string
	LinkedinPage *string
	// LogoURL stays nil at signup, same as StudentProfile.ResumeURL.
	LogoURL *string
}

type CompanyContact struct {
	FullName string
	JobTitle string
	Phone    string
}
