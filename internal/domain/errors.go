package domain

import "errors"

var (
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrRecordNotFound      = errors.New("record not found")
	ErrEditConflict        = errors.New("edit conflict")
	ErrSeatAlreadyTaken    = errors.New("seat is already taken for this performance")
	ErrGenreAlreadyExists  = errors.New("genre already exists")
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrInvalidReference    = errors.New("referenced record does not exist")
)
