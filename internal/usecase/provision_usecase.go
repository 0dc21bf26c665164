package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"linktern/internal/domain/account"
)

var ErrInvalidInput = errors.New("invalid input")

// ProvisionInput is the role-keyed signup payload. Exactly the block matching
// Role must be set: Student for students, Company+Contact for employers. The
// password arrives already confirmed equal to its confirmation field; this
// layer never sees the duplicate.
type ProvisionInput struct {
	Role     account.Role
	Email    string
	Password string

	Student *account.StudentProfile
	Company *account.CompanyProfile
	Contact *account.CompanyContact
}

type ProvisionUsecase interface {
	Provision(ctx context.Context, in ProvisionInput) (account.Identity, error)
}

type Provisioner struct {
	dir    account.Directory
	logger *log.Logger
}

func NewProvisionUsecase(dir account.Directory, logger *log.Logger) *Provisioner {
	return &Provisioner{dir: dir, logger: logger}
}

// Provision turns a (role, credentials, profile) tuple into the full set of
// account records: credential, identity link, role profile and, for
// employers, the company contact. The writes run strictly in order, since
// each needs an ID generated by the one before it, and the first failure
// stops the run. Records written before a failure are left in place; there
// is no compensation and no retry.
func (p *Provisioner) Provision(ctx context.Context, in ProvisionInput) (account.Identity, error) {
	if err := validateShape(in); err != nil {
		return account.Identity{}, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	identityID, err := p.dir.CreateCredential(ctx, email, in.Password)
	if err != nil {
		return account.Identity{}, err
	}

	if err := p.dir.WriteIdentityLink(ctx, identityID, in.Role); err != nil {
		p.logOrphan(email, "identity_link", err)
		return account.Identity{}, err
	}

	switch in.Role {
	case account.RoleStudent:
		student := *in.Student
		if strings.TrimSpace(student.Country) == "" {
			student.Country = account.DefaultCountry
		}
		if err := p.dir.WriteStudentProfile(ctx, identityID, student); err != nil {
			p.logOrphan(email, "student", err)
			return account.Identity{}, err
		}

	case account.RoleEmployer:
		companyID, err := p.dir.WriteCompanyProfile(ctx, identityID, *in.Company)
		if err != nil {
			p.logOrphan(email, "company", err)
			return account.Identity{}, err
		}
		if err := p.dir.WriteCompanyContact(ctx, companyID, *in.Contact); err != nil {
			p.logOrphan(email, "company_contact", err)
			return account.Identity{}, err
		}
	}

	return account.Identity{ID: identityID, Email: email}, nil
}

// validateShape rejects inputs before any remote call is made. Field content
// is not checked here: the directory is the authority on credential validity.
func validateShape(in ProvisionInput) error {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return ErrInvalidInput
	}

	switch in.Role {
	case account.RoleStudent:
		if in.Student == nil || in.Company != nil || in.Contact != nil {
			return ErrInvalidInput
		}
	case account.RoleEmployer:
		if in.Company == nil || in.Contact == nil || in.Student != nil {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	return nil
}

func (p *Provisioner) logOrphan(email, stage string, err error) {
	if p == nil || p.logger == nil {
		return
	}
	p.logger.Printf("[Provision] partial signup | email=%s failed_stage=%s err=%v", email, stage, err)
}
