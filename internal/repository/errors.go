package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// unique constraint violated
	ErrConflict = errors.New("conflict")
)
