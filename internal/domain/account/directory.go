package account

import "context"

// Reason values the directory reports on credential rejection.
const (
	ReasonEmailTaken   = "email-taken"
	ReasonBadPassword  = "weak-password"
	ReasonBadCredType  = "malformed-credential"
	ReasonUnauthorized = "invalid-credentials"
)

// CredentialError is returned when the directory rejects an email/password
// pair. The directory is the authority on what a valid credential is; callers
// surface the reason verbatim.
type CredentialError struct {
	Reason string
	Err    error
}

func (e *CredentialError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return "credential rejected: " + e.Reason + ": " + e.Err.Error()
	}
	return "credential rejected: " + e.Reason
}

func (e *CredentialError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteError is returned when the directory rejects a record write. Table
// names which signup stage failed: identity_link, student, company or
// company_contact.
type WriteError struct {
	Table string
	Err   error
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return "write " + e.Table + ": " + e.Err.Error()
	}
	return "write " + e.Table + " failed"
}

func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Directory is the account backend the provisioning flow runs against. Each
// operation is a single remote write; none of them are retried and none of
// them roll back earlier writes.
type Directory interface {
	// CreateCredential registers an email/password pair and returns the new
	// identity ID. Fails with *CredentialError.
	CreateCredential(ctx context.Context, email, password string) (string, error)

	// WriteIdentityLink records the role chosen at signup, one row per
	// identity. Fails with *WriteError{Table: "identity_link"}.
	WriteIdentityLink(ctx context.Context, identityID string, role Role) error

	// WriteStudentProfile persists the student record for an identity.
	// Fails with *WriteError{Table: "student"}.
	WriteStudentProfile(ctx context.Context, identityID string, p StudentProfile) error

	// WriteCompanyProfile persists the company record and returns its
	// generated ID, which the contact write needs.
	// Fails with *WriteError{Table: "company"}.
	WriteCompanyProfile(ctx context.Context, identityID string, p CompanyProfile) (string, error)

	// WriteCompanyContact persists the contact person for an already-written
	// company. Fails with *WriteError{Table: "company_contact"}.
	WriteCompanyContact(ctx context.Context, companyID string, c CompanyContact) error

	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (Session, error)

	// SignOut revokes a session token. Callers treat the result as advisory;
	// a lost revocation is not surfaced to the user.
	SignOut(ctx context.Context, token string) error
}

// ProfileReader is the read side of the directory, used after sign-in to
// load the role-shaped profile for an identity.
type ProfileReader interface {
	GetIdentity(ctx context.Context, identityID string) (Identity, Role, error)
	GetStudentProfile(ctx context.Context, identityID string) (StudentProfile, error)
	// GetCompanyProfile also returns the company's generated ID.
	GetCompanyProfile(ctx context.Context, identityID string) (CompanyProfile, string, error)
}
