package repositories

import "errors"

var (
	// ErrNotFound is returned when a state key or record is not present.
	ErrNotFound = errors.New("requested record not found")

	// ErrPersistence is returned for underlying store read/write failures.
	// The in-memory state of the owning service stays correct; durability
	// is lost until the next successful write.
	ErrPersistence = errors.New("state store failure")
)
