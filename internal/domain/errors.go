package domain

import "errors"

var (
	// ErrMissingSource is returned when grade is invoked without a student repository.
	ErrMissingSource = errors.New("student repository address is required")
	// ErrReferenceRun wraps failures of the reference binary.
	ErrReferenceRun = errors.New("reference run failed")
)
