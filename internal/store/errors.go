package store

import (
	"errors"
	"fmt"
)

// ErrPlaylistNotFound matches every NotFoundError via errors.Is.
var ErrPlaylistNotFound = errors.New("playlist not found")

// NotFoundError reports that no playlist exists with the requested ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("playlist not found with id: %d", e.ID)
}

// Is lets callers test for ErrPlaylistNotFound without unwrapping the ID.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrPlaylistNotFound
}

func notFound(id int64) error {
	return &NotFoundError{ID: id}
}
