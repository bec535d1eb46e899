package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation is one field-level cause inside a validation Error.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the distinguishable validation error kind. It is the only error
// type this package returns for malformed input; callers branch on it with
// errors.As and never see raw validator internals.
type Error struct {
	Violations []FieldViolation
}

func (e *Error) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsError unwraps err into a validation *Error, if it is one.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var phoneRe = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	return v
}

func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Violations: make([]FieldViolation, 0, len(verrs))}
	for _, fe := range verrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:   fe.Field(),
			Message: translate(fe),
		})
	}
	return out
}

var fieldLabels = map[string]string{
	"jobId":        "Job ID",
	"firstName":    "First name",
	"lastName":     "Last name",
	"email":        "Email",
	"phone":        "Phone number",
	"resume":       "Resume",
	"coverLetter":  "Cover letter",
	"experience":   "Experience",
	"portfolio":    "Portfolio",
	"linkedin":     "LinkedIn",
	"github":       "GitHub",
	"website":      "Website",
	"name":         "Name",
	"subject":      "Subject",
	"message":      "Message",
	"company":      "Company name",
	"userType":     "User type",
	"skills":       "Skills",
	"source":       "Source",
	"title":        "Title",
	"description":  "Description",
	"requirements": "Requirements",
	"location":     "Location",
	"type":         "Employment type",
	"status":       "Status",
	"salaryMin":    "Salary",
	"salaryMax":    "Salary",
	"currency":     "Currency",
	"department":   "Department",
	"benefits":     "Benefits",
	"notes":        "Notes",
}

func label(fe validator.FieldError) string {
	// Dive violations come through as e.g. "requirements[3]".
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		name = name[:i]
	}
	if l, ok := fieldLabels[name]; ok {
		return l
	}
	return name
}

func translate(fe validator.FieldError) string {
	l := label(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", l)
	case "email":
		return "Invalid email address"
	case "url":
		return fmt.Sprintf("Invalid %s URL", l)
	case "intlphone":
		return "Invalid phone number"
	case "len":
		return fmt.Sprintf("%s must be %s characters", l, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", l, strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("%s requires at least %s entries", l, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", l, fe.Param())
		default:
			return fmt.Sprintf("%s must be at least %s", l, fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("Maximum %s %s allowed", fe.Param(), strings.ToLower(l))
		case reflect.String:
			return fmt.Sprintf("%s must be less than %s characters", l, fe.Param())
		default:
			return fmt.Sprintf("%s must be at most %s", l, fe.Param())
		}
	case "gte":
		return fmt.Sprintf("%s must be positive", l)
	default:
		return fmt.Sprintf("%s is invalid", l)
	}
}
