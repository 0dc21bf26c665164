package postgres

import (
	"context"
	"errors"

	"linktern/internal/domain/account"

	"github.com/jackc/pgx/v5"
)

var ErrIdentityNotFound = errors.New("identity not found")

func (d *Directory) GetIdentity(ctx context.Context, identityID string) (account.Identity, account.Role, error) {
	var (
		email string
		role  *string
	)
	row := d.db.QueryRow(ctx,
		`SELECT i.email, l.role
		 FROM identities i
		 LEFT JOIN identity_links l ON l.id = i.id
		 WHERE i.id = $1`,
		identityID,
	)
	if err := row.Scan(&email, &role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Identity{}, "", ErrIdentityNotFound
		}
		return account.Identity{}, "", err
	}

	r := account.Role("")
	if role != nil {
		r = account.Role(*role)
	}
	return account.Identity{ID: identityID, Email: email}, r, nil
}

func (d *Directory) GetStudentProfile(ctx context.Context, identityID string) (account.StudentProfile, error) {
	var p account.StudentProfile
	row := d.db.QueryRow(ctx,
		`SELECT first_name, last_name, phone, university, major,
		        expected_graduation, gpa, bio, skills,
		        linkedin_profile, portfolio_website, cv_url, city, country
		 FROM students WHERE user_id = $1`,
		identityID,
	)
	err := row.Scan(
		&p.FirstName, &p.LastName, &p.Phone, &p.University, &p.Major,
		&p.ExpectedGraduation, &p.GPA, &p.Bio, &p.Skills,
		&p.LinkedinProfile, &p.PortfolioWebsite, &p.ResumeURL, &p.City, &p.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.StudentProfile{}, ErrIdentityNotFound
		}
		return account.StudentProfile{}, err
	}
	return p, nil
}

func (d *Directory) GetCompanyProfile(ctx context.Context, identityID string) (account.CompanyProfile, string, error) {
	var (
		p         account.CompanyProfile
		companyID string
	)
	row := d.db.QueryRow(ctx,
		`SELECT id, company_name, industry, company_size, website,
		        description, address, city, linkedin_page, logo_url
		 FROM companies WHERE user_id = $1`,
		identityID,
	)
	err := row.Scan(
		&companyID, &p.CompanyName, &p.Industry, &p.CompanySize, &p.Website,
		&p.Description, &p.Address, &p.City, &p.LinkedinPage, &p.LogoURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.CompanyProfile{}, "", ErrIdentityNotFound
		}
		return account.CompanyProfile{}, "", err
	}
	return p, companyID, nil
}
