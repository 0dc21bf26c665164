package postgres

import (
	"context"

	"linktern/internal/domain/account"
)

func (d *Directory) WriteIdentityLink(ctx context.Context, identityID string, role account.Role) error {
	_, err := d.db.Exec(ctx,
		`INSERT INTO identity_links (id, role) VALUES ($1, $2)`,
		identityID, string(role),
	)
	if err != nil {
		return &account.WriteError{Table: "identity_link", Err: err}
	}
	return nil
}

func (d *Directory) WriteStudentProfile(ctx context.Context, identityID string, p account.StudentProfile) error {
	_, err := d.db.Exec(ctx,
		`INSERT INTO students (
			user_id, first_name, last_name, phone, university, major,
			expected_graduation, gpa, bio, skills,
			linkedin_profile, portfolio_website, cv_url, city, country
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		identityID, p.FirstName, p.LastName, p.Phone, p.University, p.Major,
		p.ExpectedGraduation, p.GPA, p.Bio, p.Skills,
		p.LinkedinProfile, p.PortfolioWebsite, p.ResumeURL, p.City, p.Country,
	)
	if err != nil {
		return &account.WriteError{Table: "student", Err: err}
	}
	return nil
}

func (d *Directory) WriteCompanyProfile(ctx context.Context, identityID string, p account.CompanyProfile) (string, error) {
	var companyID string
	row := d.db.QueryRow(ctx,
		`INSERT INTO companies (
			user_id, company_name, industry, company_size, website,
			description, address, city, linkedin_page, logo_url
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		identityID, p.CompanyName, p.Industry, p.CompanySize, p.Website,
		p.Description, p.Address, p.City, p.LinkedinPage, p.LogoURL,
	)
	if err := row.Scan(&companyID); err != nil {
		return "", &account.WriteError{Table: "company", Err: err}
	}
	return companyID, nil
}

func (d *Directory) WriteCompanyContact(ctx context.Context, companyID string, c account.CompanyContact) error {
	_, err := d.db.Exec(ctx,
		`INSERT INTO companies_contact (company_id, full_name, job_title, phone)
		 VALUES ($1, $2, $3, $4)`,
		companyID, c.FullName, c.JobTitle, c.Phone,
	)
	if err != nil {
		return &account.WriteError{Table: "company_contact", Err: err}
	}
	return nil
}
