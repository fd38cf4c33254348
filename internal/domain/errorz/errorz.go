package errorz

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// Precondition errors. The messages are part of the client contract
	// and are returned verbatim in 400 responses.
	ErrNoPost        = errors.New("postId is required")
	ErrNotLoggedIn   = errors.New("Must be logged in")
	ErrEmptyQuestion = errors.New("Question is required")
)
