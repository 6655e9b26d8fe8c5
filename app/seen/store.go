package seen

import (
	"context"
	"fmt"
)

// Store persists a Record between runs.
//
// Load returns an empty record when no state exists yet. Save overwrites the
// previous state with the full record.
type Store interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, record *Record) error
	Close() error
}

// StoreIOError means the prior state could not be read. Callers treat it as
// an empty record.
type StoreIOError struct {
	Location string
	Err      error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("failed to read seen state from %s: %v", e.Location, e.Err)
}

func (e *StoreIOError) Unwrap() error {
	return e.Err
}

// StoreWriteError means the updated state could not be persisted.
type StoreWriteError struct {
	Location string
	Err      error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to write seen state to %s: %v", e.Location, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
