package sentinel

import "errors"

// Sentinel dependency errors. Stores should return these (optionally wrapped)
// so services can translate them into domain errors exactly once.
var (
	// ErrNotFound signals that the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForeignKey signals a referential-integrity failure raised by the
	// store: a NOT NULL or FOREIGN KEY constraint rejected the write.
	// Services surface it as a persistence failure, not a client error.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrUnavailable signals that the backing store cannot be reached.
	ErrUnavailable = errors.New("unavailable")
)
