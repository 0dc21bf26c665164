package usecase

import (
	"context"
	"errors"
	"testing"

	"linktern/internal/domain/account"
)

// fakeDirectory records every call in order and can be told to fail at a
// given operation.
type fakeDirectory struct {
	calls []string

	identityID string
	companyID  string

	failCredential error
	failLink       error
	failStudent    error
	failCompany    error
	failContact    error

	gotLinkRole       account.Role
	gotStudent        account.StudentProfile
	gotCompany        account.CompanyProfile
	gotContact        account.CompanyContact
	gotContactCompany string
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{identityID: "id-123", companyID: "co-456"}
}

func (f *fakeDirectory) CreateCredential(_ context.Context, email, password string) (string, error) {
	f.calls = append(f.calls, "createCredential")
	if f.failCredential != nil {
		return "", f.failCredential
	}
	return f.identityID, nil
}

func (f *fakeDirectory) WriteIdentityLink(_ context.Context, identityID string, role account.Role) error {
	f.calls = append(f.calls, "writeIdentityLink")
	f.gotLinkRole = role
	return f.failLink
}

func (f *fakeDirectory) WriteStudentProfile(_ context.Context, identityID string, p account.StudentProfile) error {
	f.calls = append(f.calls, "writeStudentProfile")
	f.gotStudent = p
	return f.failStudent
}

func (f *fakeDirectory) WriteCompanyProfile(_ context.Context, identityID string, p account.CompanyProfile) (string, error) {
	f.calls = append(f.calls, "writeCompanyProfile")
	f.gotCompany = p
	if f.failCompany != nil {
		return "", f.failCompany
	}
	return f.companyID, nil
}

func (f *fakeDirectory) WriteCompanyContact(_ context.Context, companyID string, c account.CompanyContact) error {
	f.calls = append(f.calls, "writeCompanyContact")
	f.gotContact = c
	f.gotContactCompany = companyID
	return f.failContact
}

func (f *fakeDirectory) SignIn(_ context.Context, email, password string) (account.Session, error) {
	f.calls = append(f.calls, "signIn")
	return account.Session{}, nil
}

func (f *fakeDirectory) SignOut(_ context.Context, token string) error {
	f.calls = append(f.calls, "signOut")
	return nil
}

func studentInput() ProvisionInput {
	gpa := 3.8
	return ProvisionInput{
		Role:     account.RoleStudent,
		Email:    "a@x.com",
		Password: "p1",
		Student: &account.StudentProfile{
			FirstName:          "Sara",
			LastName:           "Al-Otaibi",
			Phone:              "+966 55 000 0000",
			University:         "King Saud University",
			Major:              "Computer Science",
			ExpectedGraduation: "2026",
			GPA:                &gpa,
			Bio:                "bio",
			Skills:             []string{"Python", "React"},
		},
	}
}

func employerInput() ProvisionInput {
	return ProvisionInput{
		Role:     account.RoleEmployer,
		Email:    "hr@neom.example",
		Password: "p2",
		Company: &account.CompanyProfile{
			CompanyName: "NEOM Tech",
			Industry:    "Technology",
			CompanySize: "51-200",
			Website:     "https://neom.example",
			Description: "desc",
			Address:     "Riyadh Front",
			City:        "Riyadh",
		},
		Contact: &account.CompanyContact{
			FullName: "Omar H.",
			JobTitle: "Talent Lead",
			Phone:    "+966 55 111 1111",
		},
	}
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %v, want %v", got, want)
		}
	}
}

func TestProvision_StudentSuccess(t *testing.T) {
	dir := newFakeDirectory()
	uc := NewProvisionUsecase(dir, nil)

	id, err := uc.Provision(context.Background(), studentInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if id.ID != "id-123" || id.Email != "a@x.com" {
		t.Fatalf("unexpected identity: %+v", id)
	}
	assertCalls(t, dir.calls, []string{"createCredential", "writeIdentityLink", "writeStudentProfile"})
	if dir.gotLinkRole != account.RoleStudent {
		t.Fatalf("link role = %q, want student", dir.gotLinkRole)
	}
}

func TestProvision_EmployerSuccess(t *testing.T) {
	dir := newFakeDirectory()
	uc := NewProvisionUsecase(dir, nil)

	_, err := uc.Provision(context.Background(), employerInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	assertCalls(t, dir.calls, []string{
		"createCredential", "writeIdentityLink", "writeCompanyProfile", "writeCompanyContact",
	})
	if dir.gotLinkRole != account.RoleEmployer {
		t.Fatalf("link role = %q, want employer", dir.gotLinkRole)
	}
	// Contact write must carry exactly the ID the company write returned.
	if dir.gotContactCompany != "co-456" {
		t.Fatalf("contact company id = %q, want co-456", dir.gotContactCompany)
	}
}

func TestProvision_CredentialFailureShortCircuits(t *testing.T) {
	dir := newFakeDirectory()
	credErr := &account.CredentialError{Reason: account.ReasonEmailTaken}
	dir.failCredential = credErr
	uc := NewProvisionUsecase(dir, nil)

	_, err := uc.Provision(context.Background(), studentInput())

	var ce *account.CredentialError
	if !errors.As(err, &ce) || ce.Reason != account.ReasonEmailTaken {
		t.Fatalf("expected email-taken CredentialError, got %v", err)
	}
	// No write of any kind after the credential rejection.
	assertCalls(t, dir.calls, []string{"createCredential"})
}

func TestProvision_ProfileFailureLeavesEarlierWrites(t *testing.T) {
	dir := newFakeDirectory()
	dir.failStudent = &account.WriteError{Table: "student", Err: errors.New("boom")}
	uc := NewProvisionUsecase(dir, nil)

	_, err := uc.Provision(context.Background(), studentInput())

	var we *account.WriteError
	if !errors.As(err, &we) || we.Table != "student" {
		t.Fatalf("expected student WriteError, got %v", err)
	}
	// The credential and link calls happened exactly once each and are not
	// undone: no extra directory calls follow the failure.
	assertCalls(t, dir.calls, []string{"createCredential", "writeIdentityLink", "writeStudentProfile"})
}

func TestProvision_LinkFailureStopsBeforeProfile(t *testing.T) {
	dir := newFakeDirectory()
	dir.failLink = &account.WriteError{Table: "identity_link", Err: errors.New("down")}
	uc := NewProvisionUsecase(dir, nil)

	_, err := uc.Provision(context.Background(), employerInput())

	var we *account.WriteError
	if !errors.As(err, &we) || we.Table != "identity_link" {
		t.Fatalf("expected identity_link WriteError, got %v", err)
	}
	assertCalls(t, dir.calls, []string{"createCredential", "writeIdentityLink"})
}

func TestProvision_ContactFailureAfterCompany(t *testing.T) {
	dir := newFakeDirectory()
	dir.failContact = &account.WriteError{Table: "company_contact", Err: errors.New("boom")}
	uc := NewProvisionUsecase(dir, nil)

	_, err := uc.Provision(context.Background(), employerInput())

	var we *account.WriteError
	if !errors.As(err, &we) || we.Table != "company_contact" {
		t.Fatalf("expected company_contact WriteError, got %v", err)
	}
	assertCalls(t, dir.calls, []string{
		"createCredential", "writeIdentityLink", "writeCompanyProfile", "writeCompanyContact",
	})
}

func TestProvision_BlankGPAStaysAbsent(t *testing.T) {
	dir := newFakeDirectory()
	uc := NewProvisionUsecase(dir, nil)

	in := studentInput()
	in.Student.GPA = nil

	if _, err := uc.Provision(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dir.gotStudent.GPA != nil {
		t.Fatalf("GPA = %v, want absent", *dir.gotStudent.GPA)
	}
}

func TestProvision_CountryDefaultsForStudents(t *testing.T) {
	dir := newFakeDirectory()
	uc := NewProvisionUsecase(dir, nil)

	in := studentInput()
	in.Student.Country = ""

	if _, err := uc.Provision(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dir.gotStudent.Country != account.DefaultCountry {
		t.Fatalf("country = %q, want %q", dir.gotStudent.Country, account.DefaultCountry)
	}
}

func TestProvision_ShapeValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ProvisionInput)
	}{
		{"empty email", func(in *ProvisionInput) { in.Email = "  " }},
		{"empty password", func(in *ProvisionInput) { in.Password = "" }},
		{"unknown role", func(in *ProvisionInput) { in.Role = "admin" }},
		{"student missing profile", func(in *ProvisionInput) { in.Student = nil }},
		{"student with company block", func(in *ProvisionInput) {
			in.Company = &account.CompanyProfile{}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := newFakeDirectory()
			uc := NewProvisionUsecase(dir, nil)

			in := studentInput()
			tc.mutate(&in)

			_, err := uc.Provision(context.Background(), in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(dir.calls) != 0 {
				t.Fatalf("no directory call expected, got %v", dir.calls)
			}
		})
	}

	t.Run("employer missing contact", func(t *testing.T) {
		dir := newFakeDirectory()
		uc := NewProvisionUsecase(dir, nil)

		in := employerInput()
		in.Contact = nil

		_, err := uc.Provision(context.Background(), in)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if len(dir.calls) != 0 {
			t.Fatalf("no directory call expected, got %v", dir.calls)
		}
	})
}
