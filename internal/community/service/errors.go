package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated    = errors.New("not logged in")
	ErrForbidden          = errors.New("no permission for this entry")
	ErrNotAdmin           = errors.New("admin only")
	ErrNotFound           = errors.New("not found")
	ErrUnknownAnimal      = errors.New("unknown animal")
	ErrAuthKeyMismatch    = errors.New("auth key does not match")
	ErrInvalidCredentials = errors.New("wrong id or password")

	// ErrDuplicate is wrapped by every registration collision.
	ErrDuplicate     = errors.New("already exists")
	ErrUsernameTaken = fmt.Errorf("username %w", ErrDuplicate)
	ErrEmailTaken    = fmt.Errorf("email %w", ErrDuplicate)
	ErrPhoneTaken    = fmt.Errorf("phone %w", ErrDuplicate)

	ErrUserNotFound   = fmt.Errorf("no user matches the given details: %w", ErrNotFound)
	ErrNoPendingReset = fmt.Errorf("no password reset in progress: %w", ErrUnauthenticated)
)

// ValidationError carries per field messages. Nothing is written when one
// is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func validation(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// NotFoundError names the missing entry.
type NotFoundError struct {
	ID  int64
	Msg string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s (id %d)", e.Msg, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func entryNotFound(id int64) error {
	return &NotFoundError{ID: id, Msg: "entry not found"}
}

func deleteNotFound(id int64) error {
	return &NotFoundError{ID: id, Msg: "could not delete, id not found"}
}
