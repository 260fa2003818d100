package repository

import "errors"

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSlot is returned when an insert loses the race on the
	// (provider_id, date, slot) uniqueness constraint. The constraint is
	// the sole conflict-detection mechanism; there is no separate
	// check-then-insert.
	ErrDuplicateSlot = errors.New("slot already booked")
)
