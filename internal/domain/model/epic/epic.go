package epic

import (
	"errors"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
)

// Epic represents a top-level task grouping zero or more stories.
// It owns the ordered list of story ids it references; the story records
// themselves live in the snapshot's story collection.
type Epic struct {
	id          int
	name        string
	description string
	status      model.Status
	storyIDs    []int
}

// New creates a new Epic with the given id. New epics start Open with no
// stories.
func New(id int, name, description string) (*Epic, error) {
	if name == "" {
		return nil, errors.New("epic name cannot be empty")
	}
	return &Epic{
		id:          id,
		name:        name,
		description: description,
		status:      model.StatusOpen,
		storyIDs:    []int{},
	}, nil
}

// Reconstruct rebuilds an Epic from stored data
func Reconstruct(id int, name, description string, status model.Status, storyIDs []int) *Epic {
	if storyIDs == nil {
		storyIDs = []int{}
	}
	return &Epic{
		id:          id,
		name:        name,
		description: description,
		status:      status,
		storyIDs:    storyIDs,
	}
}

// ID returns the epic id
func (e *Epic) ID() int {
	return e.id
}

// Name returns the epic name
func (e *Epic) Name() string {
	return e.name
}

// Description returns the epic description
func (e *Epic) Description() string {
	return e.description
}

// Status returns the current status
func (e *Epic) Status() model.Status {
	return e.status
}

// StoryIDs returns the owned story ids in insertion order.
// The returned slice is a copy.
func (e *Epic) StoryIDs() []int {
	out := make([]int, len(e.storyIDs))
	copy(out, e.storyIDs)
	return out
}

// HasStory reports whether the epic references the given story id
func (e *Epic) HasStory(storyID int) bool {
	for _, id := range e.storyIDs {
		if id == storyID {
			return true
		}
	}
	return false
}

// AddStory appends a story id to the epic. Adding an id that is already
// present is a no-op, so a retried create cannot duplicate the reference.
func (e *Epic) AddStory(storyID int) {
	if e.HasStory(storyID) {
		return
	}
	e.storyIDs = append(e.storyIDs, storyID)
}

// RemoveStory drops a story id from the epic. It reports whether the id
// was referenced.
func (e *Epic) RemoveStory(storyID int) bool {
	for i, id := range e.storyIDs {
		if id == storyID {
			e.storyIDs = append(e.storyIDs[:i], e.storyIDs[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyStatus runs a lifecycle operation. On rejection the status is
// unchanged and the transition error is returned.
func (e *Epic) ApplyStatus(op model.Operation) error {
	next, err := e.status.Apply(op)
	if err != nil {
		return err
	}
	e.status = next
	return nil
}
