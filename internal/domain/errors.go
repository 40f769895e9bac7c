package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the handler layer to branch on with errors.Is.
// Channel failures are deliberately not part of this set; they travel as
// structured SendResults instead.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrRendering  = errors.New("card rendering failed")
)

func NotFoundError(resource string, id any) error {
	return fmt.Errorf("%w: %s with id '%v'", ErrNotFound, resource, id)
}

func ValidationError(format string, v ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, v...))
}

func RenderingError(cause error) error {
	return fmt.Errorf("%w: %v", ErrRendering, cause)
}
