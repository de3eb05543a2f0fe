package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 6

// FieldErrors maps form field names to validation messages. It satisfies
// error and unwraps to ErrValidation so callers can branch with errors.Is.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

func (e FieldErrors) Unwrap() error {
	return domainErrors.ErrValidation
}

// ValidEmail reports whether the address looks deliverable.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateRegistration checks the registration form and returns one message
// per offending field. An empty result means the form is valid.
func ValidateRegistration(input RegisterInput) FieldErrors {
	errs := make(FieldErrors)
	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	}
	if !ValidEmail(input.Email) {
		errs["email"] = "email address is invalid"
	}
	if len(input.Password) < minPasswordLength {
		errs["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
