package notification

import "errors"

var (
	// ErrNotFound covers both "no such notification" and "belongs to another
	// user": queries are owner-filtered so existence is never leaked.
	ErrNotFound = errors.New("notification not found")
)
