package story

import (
	"errors"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
)

// Story represents a task belonging to exactly one epic. The epic id is a
// back-reference; ownership of the link lives on the epic's story list.
type Story struct {
	id          int
	epicID      int
	name        string
	description string
	status      model.Status
}

// New creates a new Story with the given id under the given epic.
// New stories start Open.
func New(id, epicID int, name, description string) (*Story, error) {
	if name == "" {
		return nil, errors.New("story name cannot be empty")
	}
	return &Story{
		id:          id,
		epicID:      epicID,
		name:        name,
		description: description,
		status:      model.StatusOpen,
	}, nil
}

// Reconstruct rebuilds a Story from stored data
func Reconstruct(id, epicID int, name, description string, status model.Status) *Story {
	return &Story{
		id:          id,
		epicID:      epicID,
		name:        name,
		description: description,
		status:      status,
	}
}

// ID returns the story id
func (s *Story) ID() int {
	return s.id
}

// EpicID returns the id of the owning epic
func (s *Story) EpicID() int {
	return s.epicID
}

// Name returns the story name
func (s *Story) Name() string {
	return s.name
}

// Description returns the story description
func (s *Story) Description() string {
	return s.description
}

// Status returns the current status
func (s *Story) Status() model.Status {
	return s.status
}

// ApplyStatus runs a lifecycle operation. On rejection the status is
// unchanged and the transition error is returned.
func (s *Story) ApplyStatus(op model.Operation) error {
	next, err := s.status.Apply(op)
	if err != nil {
		return err
	}
	s.status = next
	return nil
}
