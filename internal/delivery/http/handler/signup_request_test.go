package handler

import (
	"errors"
	"reflect"
	"testing"

	"linktern/internal/domain/account"
)

func studentRequest() signupRequest {
	return signupRequest{
		Role:            "student",
		Email:           "sara@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		Student: &studentSignupBlock{
			FirstName: "Sara",
			LastName:  "Al-Harbi",
			GPA:       "3.8",
			Skills:    "Python, React,  Data Analysis,",
		},
	}
}

func TestProvisionInputFromRequest_Student(t *testing.T) {
	in, err := provisionInputFromRequest(studentRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if in.Role != account.RoleStudent {
		t.Fatalf("role = %q", in.Role)
	}
	if in.Student == nil {
		t.Fatal("student block missing")
	}
	if in.Company != nil || in.Contact != nil {
		t.Fatal("employer blocks should be nil for a student")
	}

	wantSkills := []string{"Python", "React", "Data Analysis"}
	if !reflect.DeepEqual(in.Student.Skills, wantSkills) {
		t.Fatalf("skills = %v, want %v", in.Student.Skills, wantSkills)
	}
	if in.Student.GPA == nil || *in.Student.GPA != 3.8 {
		t.Fatalf("gpa = %v", in.Student.GPA)
	}
}

func TestProvisionInputFromRequest_BlankGPAStaysAbsent(t *testing.T) {
	req := studentRequest()
	req.Student.GPA = "   "

	in, err := provisionInputFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Student.GPA != nil {
		t.Fatalf("blank gpa should stay absent, got %v", *in.Student.GPA)
	}
}

func TestProvisionInputFromRequest_BadGPA(t *testing.T) {
	req := studentRequest()
	req.Student.GPA = "three point eight"

	_, err := provisionInputFromRequest(req)
	if !errors.Is(err, errBadGPA) {
		t.Fatalf("err = %v, want errBadGPA", err)
	}
}

func TestProvisionInputFromRequest_PasswordMismatch(t *testing.T) {
	req := studentRequest()
	req.ConfirmPassword = "different"

	_, err := provisionInputFromRequest(req)
	if !errors.Is(err, errPasswordMismatch) {
		t.Fatalf("err = %v, want errPasswordMismatch", err)
	}
}

func TestProvisionInputFromRequest_MissingBlocks(t *testing.T) {
	req := studentRequest()
	req.Student = nil
	if _, err := provisionInputFromRequest(req); !errors.Is(err, errMissingProfile) {
		t.Fatalf("student without block: err = %v", err)
	}

	emp := signupRequest{
		Role:            "employer",
		Email:           "hr@acme.example",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		Company:         &companySignupBlock{CompanyName: "Acme"},
	}
	if _, err := provisionInputFromRequest(emp); !errors.Is(err, errMissingProfile) {
		t.Fatalf("employer without contact: err = %v", err)
	}
}

func TestProvisionInputFromRequest_Employer(t *testing.T) {
	req := signupRequest{
		Role:            "employer",
		Email:           "hr@acme.example",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		Company:         &companySignupBlock{CompanyName: "Acme", City: "Riyadh"},
		Contact:         &contactSignupBlock{FullName: "Omar N.", JobTitle: "HR Lead", Phone: "+966500000000"},
	}

	in, err := provisionInputFromRequest(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Company == nil || in.Contact == nil {
		t.Fatal("employer blocks missing")
	}
	if in.Student != nil {
		t.Fatal("student block should be nil for an employer")
	}
	if in.Contact.FullName != "Omar N." {
		t.Fatalf("contact = %+v", in.Contact)
	}
}
