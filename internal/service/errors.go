package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks empty or malformed identifiers, rejected before
	// touching storage.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound means the account does not resolve. Callers map this to
	// a re-authenticate signal rather than a generic failure.
	ErrUserNotFound = errors.New("user not found")
)

// CatalogEmptyError means a part has zero candidate questions, so no valid
// test set can be formed. This is a data problem upstream, not something to
// retry around.
type CatalogEmptyError struct {
	Part int
}

func (e *CatalogEmptyError) Error() string {
	return fmt.Sprintf("question catalog is empty for part %d", e.Part)
}
