package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func violationFor(t *testing.T, err error, field string) FieldViolation {
	t.Helper()
	verr, ok := AsError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, v := range verr.Violations {
		if v.Field == field || strings.HasPrefix(v.Field, field+"[") {
			return v
		}
	}
	t.Fatalf("no violation for field %q in %v", field, verr.Violations)
	return FieldViolation{}
}

func validJob() JobInput {
	return JobInput{
		Title:        "Backend Engineer",
		Description:  "Build and run the careers backend.",
		Requirements: []string{"Go", "PostgreSQL"},
		Type:         "FULL_TIME",
	}
}

func TestJob_AppliesDefaults(t *testing.T) {
	in := validJob()
	if err := Job(&in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if in.Status != "ACTIVE" {
		t.Fatalf("expected default status ACTIVE, got %s", in.Status)
	}
	if in.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %s", in.Currency)
	}
	if in.Benefits == nil || in.Skills == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestJob_RequiresRequirements(t *testing.T) {
	in := validJob()
	in.Requirements = []string{}
	v := violationFor(t, Job(&in), "requirements")
	if v.Message != "Requirements requires at least 1 entries" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestJob_ShortDescription(t *testing.T) {
	in := validJob()
	in.Description = "too short"
	v := violationFor(t, Job(&in), "description")
	if v.Message != "Description must be at least 10 characters" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestJob_BadCurrencyLength(t *testing.T) {
	in := validJob()
	in.Currency = "DOLLARS"
	v := violationFor(t, Job(&in), "currency")
	if v.Message != "Currency must be 3 characters" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestJob_BadType(t *testing.T) {
	in := validJob()
	in.Type = "GIG"
	v := violationFor(t, Job(&in), "type")
	if !strings.HasPrefix(v.Message, "Employment type must be one of:") {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestJob_NegativeSalary(t *testing.T) {
	in := validJob()
	neg := -1
	in.SalaryMin = &neg
	v := violationFor(t, Job(&in), "salaryMin")
	if v.Message != "Salary must be positive" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func validApplication() JobApplicationInput {
	return JobApplicationInput{
		JobID:     uuid.NewString(),
		FirstName: "Zaid",
		LastName:  "Dweiri",
		Email:     "zaid@example.com",
	}
}

func TestJobApplication_Valid(t *testing.T) {
	in := validApplication()
	if err := JobApplication(&in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestJobApplication_ShortFirstName(t *testing.T) {
	in := validApplication()
	in.FirstName = "Z"
	v := violationFor(t, JobApplication(&in), "firstName")
	if v.Message != "First name must be at least 2 characters" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestJobApplication_TwoCharFirstNamePasses(t *testing.T) {
	in := validApplication()
	in.FirstName = "Al"
	if err := JobApplication(&in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestJobApplication_BadEmail(t *testing.T) {
	in := validApplication()
	in.Email = "not-an-email"
	v := violationFor(t, JobApplication(&in), "email")
	if v.Message != "Invalid email address" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestJobApplication_BadResumeURL(t *testing.T) {
	in := validApplication()
	bad := "not a url"
	in.Resume = &bad
	v := violationFor(t, JobApplication(&in), "resume")
	if v.Message != "Invalid Resume URL" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestJobApplication_PhoneFormats(t *testing.T) {
	good := []string{"+962 79 123 4567", "0791234567", "(079) 123-4567"}
	for _, p := range good {
		in := validApplication()
		phone := p
		in.Phone = &phone
		if err := JobApplication(&in); err != nil {
			t.Fatalf("expected %q to pass, got %v", p, err)
		}
	}

	bad := "abc"
	in := validApplication()
	in.Phone = &bad
	v := violationFor(t, JobApplication(&in), "phone")
	if v.Message != "Invalid phone number" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestContact_ShortSubject(t *testing.T) {
	in := ContactInput{
		Name:    "Zaid",
		Email:   "zaid@example.com",
		Subject: "Hey",
		Message: "A long enough message body.",
	}
	v := violationFor(t, Contact(&in), "subject")
	if v.Message != "Subject must be at least 5 characters" {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestNewsletter_Defaults(t *testing.T) {
	in := NewsletterInput{Email: "new@example.com"}
	if err := Newsletter(&in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if in.UserType != "learner" {
		t.Fatalf("expected default learner, got %s", in.UserType)
	}
	if in.Skills == nil {
		t.Fatalf("expected empty skills slice")
	}
}

func TestNewsletter_BadUserType(t *testing.T) {
	in := NewsletterInput{Email: "new@example.com", UserType: "teacher"}
	v := violationFor(t, Newsletter(&in), "userType")
	if !strings.HasPrefix(v.Message, "User type must be one of:") {
		t.Fatalf("unexpected message: %s", v.Message)
	}
}

func TestApplicationStatus_Enum(t *testing.T) {
	in := ApplicationStatusInput{Status: "ARCHIVED"}
	v := violationFor(t, ApplicationStatus(&in), "status")
	if !strings.HasPrefix(v.Message, "Status must be one of:") {
		t.Fatalf("unexpected message: %s", v.Message)
	}

	ok := ApplicationStatusInput{Status: "SHORTLISTED"}
	if err := ApplicationStatus(&ok); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}
