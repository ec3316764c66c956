package patient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("patient validation failed")
	ErrNotFound   = errors.New("patient not found")
)

// ValidationError lists the registration fields that were missing or
// invalid, in form order. Problems holds a message per field.
type ValidationError struct {
	Fields   []string
	Problems map[string]string
}

func (e *ValidationError) add(field, problem string) {
	if e.Problems == nil {
		e.Problems = make(map[string]string)
	}
	e.Fields = append(e.Fields, field)
	e.Problems[field] = problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f, e.Problems[f]))
	}
	return "patient validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError is returned by lookups for an id that is not registered.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("patient %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
