package contact

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Interest is the closed set of inquiry reasons accepted by the form.
type Interest string

const (
	InterestPurchase  Interest = "purchase"
	InterestTestDrive Interest = "test-drive"
	InterestFinancing Interest = "financing"
	InterestTradeIn   Interest = "trade-in"
	InterestOther     Interest = "other"
)

func (i Interest) Valid() bool {
	switch i {
	case InterestPurchase, InterestTestDrive, InterestFinancing, InterestTradeIn, InterestOther:
		return true
	}
	return false
}

type Submission struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Interest Interest `json:"interest"`
	Message  string   `json:"message"`
}

const (
	minNameLen    = 2
	minPhoneLen   = 10
	minMessageLen = 10
)

// ValidationError reports every violated constraint, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Validate checks all field constraints and returns a *ValidationError
// listing each violation, or nil when the submission is well-formed.
func (s Submission) Validate() error {
	var violations []string

	if utf8.RuneCountInString(s.Name) < minNameLen {
		violations = append(violations, "Name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		violations = append(violations, "Please enter a valid email address")
	}
	if utf8.RuneCountInString(s.Phone) < minPhoneLen {
		violations = append(violations, "Please enter a valid phone number")
	}
	if !s.Interest.Valid() {
		violations = append(violations, "Interest must be one of purchase, test-drive, financing, trade-in, other")
	}
	if utf8.RuneCountInString(s.Message) < minMessageLen {
		violations = append(violations, "Message must be at least 10 characters")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
