package feedback

import "errors"

var (
	// ErrNotFound indicates no pattern exists for the user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidFeedback indicates a feedback record failed validation.
	ErrInvalidFeedback = errors.New("invalid feedback")
)
