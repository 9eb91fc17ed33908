package model

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")

	// Unique violation trên LOWER(name) - caller re-fetch thay vì fail
	ErrLocationExists = errors.New("location with this name already exists")
)
