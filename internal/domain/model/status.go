package model

// Status represents the lifecycle state of an epic or a story
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// IsValid validates the status
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

// Operation is a lifecycle transition shared by epics and stories
type Operation string

const (
	OpStart   Operation = "start"
	OpClose   Operation = "close"
	OpResolve Operation = "resolve"
	OpReopen  Operation = "open"
)

// String returns the string representation
func (o Operation) String() string {
	return string(o)
}

// transitions maps each operation to its allowed source states and the
// resulting state. Applying an operation from a state outside the allowed
// set is a rejection; applying it from the resulting state itself is a
// plain success (start on an InProgress item stays InProgress).
var transitions = map[Operation]struct {
	from   []Status
	result Status
}{
	OpStart:   {from: []Status{StatusOpen, StatusInProgress}, result: StatusInProgress},
	OpClose:   {from: []Status{StatusOpen, StatusInProgress}, result: StatusClosed},
	OpResolve: {from: []Status{StatusOpen, StatusInProgress}, result: StatusResolved},
	OpReopen:  {from: []Status{StatusClosed, StatusResolved}, result: StatusOpen},
}

// Apply runs a lifecycle operation against the current status.
// It returns the resulting status, or a *TransitionError when the
// operation is not allowed from the current status.
func (s Status) Apply(op Operation) (Status, error) {
	t, ok := transitions[op]
	if !ok {
		return s, &TransitionError{From: s, Op: op}
	}
	for _, from := range t.from {
		if s == from {
			return t.result, nil
		}
	}
	return s, &TransitionError{From: s, Op: op}
}

// OperationFor maps a target status to the operation that reaches it.
// The second return value is false for an invalid target.
func OperationFor(target Status) (Operation, bool) {
	switch target {
	case StatusInProgress:
		return OpStart, true
	case StatusClosed:
		return OpClose, true
	case StatusResolved:
		return OpResolve, true
	case StatusOpen:
		return OpReopen, true
	default:
		return "", false
	}
}
