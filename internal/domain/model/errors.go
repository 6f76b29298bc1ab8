package model

import "fmt"

// TransitionError reports a rejected lifecycle operation.
// The entity's status is left unchanged when this is returned.
type TransitionError struct {
	From Status
	Op   Operation
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s an item in status %s", e.Op, e.From)
}
