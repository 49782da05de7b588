package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrEmailTaken         = errors.New("email is already registered")

	ErrMissingProfileID = errors.New("no valid user id provided")
	ErrProfileNotFound  = errors.New("no profile information found for this user")
	ErrProfileHasNoName = errors.New("profile has no name configured")
	ErrSignInRequired   = errors.New("sign in to save the card")
)

// ValidationError reports a missing or malformed user-supplied field.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SessionError wraps a failure of the session provider itself.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("failed to get authenticated user: %v", e.Err)
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

// StoreError reports a failed read against the store. Message is the store's own
// message, Op names what was being read.
type StoreError struct {
	Op      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to get %s: %s", e.Op, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a rejected write.
type PersistenceError struct {
	Op      string
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to create %s: %s", e.Op, e.Message)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
