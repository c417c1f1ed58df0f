package repositories

import "errors"

var (
	ErrInvalidID = errors.New("invalid id")
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
