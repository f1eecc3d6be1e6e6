package service

import "fmt"

// ValidationError reports a field value that failed a domain constraint.
// Handlers pick it out with errors.As and answer with the reason, keeping it
// distinct from not-found and conflict outcomes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Age bounds shared by user profiles, directors and actors.
const (
	minAge = 15
	maxAge = 100
)

func validateAge(age int) error {
	if age < minAge || age > maxAge {
		return invalid("age", fmt.Sprintf("must be between %d and %d", minAge, maxAge))
	}
	return nil
}
