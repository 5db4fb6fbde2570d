package repository

import "errors"

// Shared repository errors.
var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("repository: document not found")
	// ErrDuplicateEntry indicates a write violated a unique index.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Per-resource aliases, kept so call sites read naturally.
var (
	ErrUserNotFound    = ErrNotFound
	ErrBreedNotFound   = ErrNotFound
	ErrPostNotFound    = ErrNotFound
	ErrCommentNotFound = ErrNotFound
)
