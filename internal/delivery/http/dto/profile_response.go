package dto

type StudentProfileResponse struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	Phone              string   `json:"phone"`
	University         string   `json:"university"`
	Major              string   `json:"major"`
	ExpectedGraduation string   `json:"expected_graduation"`
	GPA                *float64 `json:"gpa,omitempty"`
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	LinkedinProfile    *string  `json:"linkedin_profile,omitempty"`
	PortfolioWebsite   *string  `json:"portfolio_website,omitempty"`
	ResumeURL          *string  `json:"resume_url,omitempty"`
	City               *string  `json:"city,omitempty"`
	Country            string   `json:"country"`
}

type CompanyProfileResponse struct {
	CompanyID    string  `json:"company_id"`
	CompanyName  string  `json:"company_name"`
	Industry     string  `json:"industry"`
	CompanySize  string  `json:"company_size"`
	Website      string  `json:"website"`
	Description  string  `json:"description"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	LinkedinPage *string `json:"linkedin_page,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

type MeResponse struct {
	ID      string                  `json:"id"`
	Email   string                  `json:"email"`
	Role    string                  `json:"role"`
	Student *StudentProfileResponse `json:"student,omitempty"`
	Company *CompanyProfileResponse `json:"company,omitempty"`
}
