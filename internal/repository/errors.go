package repository

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrSequenceTaken = errors.New("feedback sequence already taken")
)
