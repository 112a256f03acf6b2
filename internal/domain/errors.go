// Package domain holds the error taxonomy shared by every layer of the game.
package domain

import "errors"

// Error message string constants.
const (
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidState = "invalid state"
	ErrMsgNotFound     = "not found"
)

// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidInput covers malformed weights, out-of-range probabilities and empty pools.
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrInvalidState is returned when a command is issued in the wrong phase,
	// such as attacking with no active battle or moving during one.
	ErrInvalidState = errors.New(ErrMsgInvalidState)

	// ErrNotFound marks a missing record. storage.ErrNotFound wraps it; loading
	// a missing save is still not an error.
	ErrNotFound = errors.New(ErrMsgNotFound)
)
