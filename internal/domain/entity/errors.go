package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested entity does not exist.
// Repositories wrap it so callers can test with errors.Is.
var ErrNotFound = errors.New("entity not found")

// ValidationError reports which field failed validation and why.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
