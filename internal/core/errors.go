package core

import (
	"errors"
	"fmt"
)

var (
	// ErrPathCollision is returned when a rename targets a path that already
	// exists somewhere in the batch.
	ErrPathCollision = errors.New("path already exists")
	// ErrScopeOutOfRange is returned when a scope names a clip the batch does
	// not have.
	ErrScopeOutOfRange = errors.New("scope out of range")
)

// CollisionError reports the path that blocked a rename.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("path %q already exists in the selected clips", e.Path)
}

func (e *CollisionError) Unwrap() error { return ErrPathCollision }
