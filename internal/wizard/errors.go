package wizard

import (
	"errors"
	"strings"
)

var (
	ErrBusy          = errors.New("wizard: a submission is in progress")
	ErrAtFirstStep   = errors.New("wizard: already at the first step")
	ErrNoNextStep    = errors.New("wizard: no next step")
	ErrAssetNotFound = errors.New("wizard: asset not found")
)

// ValidationError is returned by Next when the profile is incomplete or
// inconsistent. Issues holds every message, in the order they were found.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "Please fix the following issues before proceeding: " + strings.Join(e.Issues, "; ")
}
