package repository

import (
	"context"
	"sort"

	"github.com/gabriel1680/jira-cli/internal/domain/model/epic"
	"github.com/gabriel1680/jira-cli/internal/domain/model/story"
)

// Snapshot is the complete tracker state as one unit: every epic, every
// story and the last issued item id. The service never holds state between
// calls; each operation retrieves a snapshot, mutates it and persists it
// back.
type Snapshot struct {
	LastItemID int
	Epics      map[int]*epic.Epic
	Stories    map[int]*story.Story
}

// NewSnapshot returns an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Epics:   map[int]*epic.Epic{},
		Stories: map[int]*story.Story{},
	}
}

// NextItemID issues a fresh id and advances the counter. Ids are
// monotonically increasing and never reused, including after deletes.
func (s *Snapshot) NextItemID() int {
	s.LastItemID++
	return s.LastItemID
}

// EpicIDs returns all epic ids in ascending order
func (s *Snapshot) EpicIDs() []int {
	ids := make([]int, 0, len(s.Epics))
	for id := range s.Epics {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// SnapshotStore is the persistence contract: whole-snapshot read, whole-
// snapshot write. Persist makes the next Retrieve return what was written;
// nothing more is assumed about durability.
type SnapshotStore interface {
	Retrieve(ctx context.Context) (*Snapshot, error)
	Persist(ctx context.Context, snapshot *Snapshot) error
}
