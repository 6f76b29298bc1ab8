package repository

import "fmt"

// Entity kinds used by NotFoundError
const (
	KindEpic  = "epic"
	KindStory = "story"
)

// NotFoundError reports a referenced id that is absent from the snapshot
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// LinkageError reports a story that exists but is not referenced by the
// given epic. A cross-epic delete is a failure, not a silent no-op.
type LinkageError struct {
	EpicID  int
	StoryID int
}

func (e *LinkageError) Error() string {
	return fmt.Sprintf("story %d is not linked to epic %d", e.StoryID, e.EpicID)
}

// StoreError wraps a snapshot store failure. Read failures and malformed
// snapshots are parse-kind; write failures are IO-kind. Once a store error
// surfaces, the persisted state can no longer be trusted to round-trip.
type StoreError struct {
	Kind string // "io" or "parse"
	Err  error
}

const (
	StoreErrIO    = "io"
	StoreErrParse = "parse"
)

func (e *StoreError) Error() string {
	return fmt.Sprintf("snapshot store %s error: %v", e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
