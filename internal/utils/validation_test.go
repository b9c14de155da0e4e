package utils

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestToSnakeCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"AppliedDate", "applied_date"},
		{"CompanyID", "company_id"},
		{"ResumeURL", "resume_url"},
		{"JobURL", "job_url"},
		{"InterviewerEmail", "interviewer_email"},
		{"ID", "id"},
	}

	for _, tc := range cases {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatValidationErrors(t *testing.T) {
	type payload struct {
		Email       string `validate:"required,email"`
		AppliedDate string `validate:"required"`
		Status      string `validate:"omitempty,oneof=applied rejected"`
	}

	v := validator.New()

	err := v.Struct(payload{Email: "not-an-email", Status: "nope"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fieldErrors := FormatValidationErrors(err)

	if msgs := fieldErrors["email"]; len(msgs) != 1 || msgs[0] != "Must be a valid email address." {
		t.Errorf("unexpected email errors: %v", msgs)
	}
	if msgs := fieldErrors["applied_date"]; len(msgs) != 1 || msgs[0] != "This field is required." {
		t.Errorf("unexpected applied_date errors: %v", msgs)
	}
	if msgs := fieldErrors["status"]; len(msgs) != 1 || msgs[0] != "Must be one of: applied, rejected." {
		t.Errorf("unexpected status errors: %v", msgs)
	}
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	fieldErrors := FormatValidationErrors(errors.New("unexpected EOF"))

	if msgs := fieldErrors["body"]; len(msgs) != 1 {
		t.Errorf("expected a single body error, got %v", fieldErrors)
	}
}
