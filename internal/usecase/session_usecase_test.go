package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"linktern/internal/domain/account"
	"linktern/internal/pkg/jwt"
)

type fakeProfileReader struct {
	identity  account.Identity
	role      account.Role
	student   account.StudentProfile
	company   account.CompanyProfile
	companyID string
	err       error
}

func (f fakeProfileReader) GetIdentity(context.Context, string) (account.Identity, account.Role, error) {
	return f.identity, f.role, f.err
}

func (f fakeProfileReader) GetStudentProfile(context.Context, string) (account.StudentProfile, error) {
	return f.student, f.err
}

func (f fakeProfileReader) GetCompanyProfile(context.Context, string) (account.CompanyProfile, string, error) {
	return f.company, f.companyID, f.err
}

type signOutDirectory struct {
	fakeDirectory
	signOutErr error
}

func (d *signOutDirectory) SignOut(_ context.Context, token string) error {
	d.calls = append(d.calls, "signOut")
	return d.signOutErr
}

func TestSignOut_AlwaysReportsSuccess(t *testing.T) {
	dir := &signOutDirectory{signOutErr: errors.New("network gone")}
	uc := NewSessionUsecase(dir, fakeProfileReader{}, nil, nil)

	if err := uc.SignOut(context.Background(), "tok"); err != nil {
		t.Fatalf("sign-out must not surface errors, got %v", err)
	}
	assertCalls(t, dir.calls, []string{"signOut"})
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	jwtSvc := jwt.NewHMACService("a", "r", 15*time.Minute, 24*time.Hour)
	access, err := jwtSvc.GenerateAccessToken("id-1", "a@x.com", account.RoleStudent)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	uc := NewSessionUsecase(newFakeDirectory(), fakeProfileReader{}, jwtSvc, nil)
	if _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_IssuesNewSession(t *testing.T) {
	jwtSvc := jwt.NewHMACService("a", "r", 15*time.Minute, 24*time.Hour)
	refresh, err := jwtSvc.GenerateRefreshToken("id-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	reader := fakeProfileReader{
		identity: account.Identity{ID: "id-1", Email: "a@x.com"},
		role:     account.RoleStudent,
	}
	uc := NewSessionUsecase(newFakeDirectory(), reader, jwtSvc, nil)

	sess, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if sess.AccessToken == "" || sess.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", sess)
	}

	claims, err := jwtSvc.ValidateToken(sess.AccessToken)
	if err != nil || claims.Role != account.RoleStudent {
		t.Fatalf("new access token invalid: %v %+v", err, claims)
	}
}

func TestMe_StudentShape(t *testing.T) {
	reader := fakeProfileReader{
		identity: account.Identity{ID: "id-1", Email: "a@x.com"},
		role:     account.RoleStudent,
		student:  account.StudentProfile{FirstName: "Sara"},
	}
	uc := NewSessionUsecase(newFakeDirectory(), reader, nil, nil)

	p, err := uc.Me(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if p.Role != account.RoleStudent || p.Student == nil || p.Company != nil {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestMe_EmployerShape(t *testing.T) {
	reader := fakeProfileReader{
		identity:  account.Identity{ID: "id-2", Email: "hr@x.com"},
		role:      account.RoleEmployer,
		company:   account.CompanyProfile{CompanyName: "NEOM Tech"},
		companyID: "co-1",
	}
	uc := NewSessionUsecase(newFakeDirectory(), reader, nil, nil)

	p, err := uc.Me(context.Background(), "id-2")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if p.Role != account.RoleEmployer || p.Company == nil || p.CompanyID != "co-1" || p.Student != nil {
		t.Fatalf("unexpected profile: %+v", p)
	}
}
