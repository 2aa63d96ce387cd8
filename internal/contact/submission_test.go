package contact

import (
	"errors"
	"strings"
	"testing"
)

func validSubmission() Submission {
	return Submission{
		Name:     "Jordan Blake",
		Email:    "jordan@example.com",
		Phone:    "5551234567",
		Interest: InterestTestDrive,
		Message:  "I would like to schedule a test drive this weekend.",
	}
}

func TestSubmission_Validate_OK(t *testing.T) {
	if err := validSubmission().Validate(); err != nil {
		t.Fatalf("valid submission rejected: %v", err)
	}
}

func TestSubmission_Validate_SingleViolation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Submission)
		wantPart string
	}{
		{"short name", func(s *Submission) { s.Name = "J" }, "Name"},
		{"bad email", func(s *Submission) { s.Email = "not-an-email" }, "email"},
		{"short phone", func(s *Submission) { s.Phone = "555" }, "phone"},
		{"unknown interest", func(s *Submission) { s.Interest = "leasing" }, "Interest"},
		{"short message", func(s *Submission) { s.Message = "hi" }, "Message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)

			err := s.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type %T", err)
			}
			if len(ve.Violations) != 1 {
				t.Fatalf("violations=%v want exactly one", ve.Violations)
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.wantPart)
			}
		})
	}
}

func TestSubmission_Validate_AggregatesAllViolations(t *testing.T) {
	s := Submission{
		Name:     "J",
		Email:    "nope",
		Phone:    "1",
		Interest: "curiosity",
		Message:  "hey",
	}

	err := s.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type %T", err)
	}
	if len(ve.Violations) != 5 {
		t.Fatalf("violations=%d want 5: %v", len(ve.Violations), ve.Violations)
	}
}

func TestInterest_Valid(t *testing.T) {
	for _, i := range []Interest{InterestPurchase, InterestTestDrive, InterestFinancing, InterestTradeIn, InterestOther} {
		if !i.Valid() {
			t.Fatalf("%q should be valid", i)
		}
	}
	if Interest("").Valid() || Interest("TEST-DRIVE").Valid() {
		t.Fatalf("invalid interests accepted")
	}
}
