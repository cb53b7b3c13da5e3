package domain

import "errors"

// Domain errors represent business logic failures.
// A query that matches nothing is not an error and never returns one of these.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates an unknown item kind.
	ErrUnsupportedKind = errors.New("unsupported item kind")

	// ErrClipboardUnavailable indicates the host has no usable clipboard.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrWatcherClosed indicates the watcher has already been closed.
	ErrWatcherClosed = errors.New("watcher closed")
)
