package models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindInvalidState ErrorKind = "invalid_state"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// Error names the entity and key that caused a failure. errors.Is matches it
// against the sentinel of its kind.
type Error struct {
	Kind   ErrorKind
	Entity string
	Key    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidState:
		return fmt.Sprintf("%s %q: invalid state", e.Entity, e.Key)
	default:
		return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
	}
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidState:
		return e.Kind == KindInvalidState
	}
	return false
}

func NotFound(entity, key string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Key: key}
}

func InvalidState(entity, key string) *Error {
	return &Error{Kind: KindInvalidState, Entity: entity, Key: key}
}
