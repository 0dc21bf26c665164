package handler

import (
	"errors"
	"strconv"
	"strings"

	"linktern/internal/domain/account"
	"linktern/internal/usecase"
)

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errMissingProfile   = errors.New("missing profile block for role")
	errBadGPA           = errors.New("gpa must be a number")
)

type signupRequest struct {
	Role            string `json:"role"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`

	Student *studentSignupBlock `json:"student,omitempty"`
	Company *companySignupBlock `json:"company,omitempty"`
	Contact *contactSignupBlock `json:"contact,omitempty"`
}

type studentSignupBlock struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Phone              string `json:"phone"`
	University         string `json:"university"`
	Major              string `json:"major"`
	ExpectedGraduation string `json:"expected_graduation"`
	// GPA arrives as the raw form value; blank means not provided.
	GPA              string  `json:"gpa"`
	Bio              string  `json:"bio"`
	Skills           string  `json:"skills"`
	LinkedinProfile  *string `json:"linkedin_profile"`
	PortfolioWebsite *string `json:"portfolio_website"`
	City             *string `json:"city"`
	Country          string  `json:"country"`
}

type companySignupBlock struct {
	CompanyName  string  `json:"company_name"`
	Industry     string  `json:"industry"`
	CompanySize  string  `json:"company_size"`
	Website      string  `json:"website"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	LinkedinPage *string `json:"linkedin_page"`
}

type contactSignupBlock struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Phone    string `json:"phone"`
}

// provisionInputFromRequest checks the confirm-password precondition and
// shapes the payload for the orchestrator. The skills free text and the GPA
// form value are converted here; everything past this point is typed.
func provisionInputFromRequest(req signupRequest) (usecase.ProvisionInput, error) {
	if req.Password == "" || req.Password != req.ConfirmPassword {
		return usecase.ProvisionInput{}, errPasswordMismatch
	}

	role, err := account.ParseRole(req.Role)
	if err != nil {
		return usecase.ProvisionInput{}, err
	}

	in := usecase.ProvisionInput{
		Role:     role,
		Email:    req.Email,
		Password: req.Password,
	}

	switch role {
	case account.RoleStudent:
		if req.Student == nil {
			return usecase.ProvisionInput{}, errMissingProfile
		}
		student, err := studentProfileFromBlock(*req.Student)
		if err != nil {
			return usecase.ProvisionInput{}, err
		}
		in.Student = &student

	case account.RoleEmployer:
		if req.Company == nil || req.Contact == nil {
			return usecase.ProvisionInput{}, errMissingProfile
		}
		company := companyProfileFromBlock(*req.Company)
		in.Company = &company
		in.Contact = &account.CompanyContact{
			FullName: req.Contact.FullName,
			JobTitle: req.Contact.JobTitle,
			Phone:    req.Contact.Phone,
		}
	}

	return in, nil
}

func studentProfileFromBlock(b studentSignupBlock) (account.StudentProfile, error) {
	gpa, err := parseGPA(b.GPA)
	if err != nil {
		return account.StudentProfile{}, err
	}

	return account.StudentProfile{
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Phone:              b.Phone,
		University:         b.University,
		Major:              b.Major,
		ExpectedGraduation: b.ExpectedGraduation,
		GPA:                gpa,
		Bio:                b.Bio,
		Skills:             account.ParseSkills(b.Skills),
		LinkedinProfile:    b.LinkedinProfile,
		PortfolioWebsite:   b.PortfolioWebsite,
		City:               b.City,
		Country:            b.Country,
	}, nil
}

func companyProfileFromBlock(b companySignupBlock) account.CompanyProfile {
	return account.CompanyProfile{
		CompanyName:  b.CompanyName,
		Industry:     b.Industry,
		CompanySize:  b.CompanySize,
		Website:      b.Website,
		Description:  b.Description,
		Address:      b.Address,
		City:         b.City,
		LinkedinPage: b.LinkedinPage,
	}
}

// parseGPA keeps a blank field absent instead of coercing it to zero.
func parseGPA(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errBadGPA
	}
	return &v, nil
}
