package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
	"github.com/gabriel1680/jira-cli/internal/domain/model/epic"
	"github.com/gabriel1680/jira-cli/internal/domain/model/story"
	"github.com/gabriel1680/jira-cli/internal/domain/repository"
)

// TrackerService exposes the create/read/update/delete operations over
// epics and stories. Every mutating call is one retrieve→mutate→persist
// cycle against the snapshot store; a failed operation never persists a
// partial mutation. The service holds no state of its own between calls.
//
// The store is assumed to be exclusively owned by this process for the
// duration of each cycle. Callers adding goroutines must add their own
// mutual exclusion around every call.
type TrackerService struct {
	store repository.SnapshotStore
}

// NewTrackerService creates a service over the given snapshot store
func NewTrackerService(store repository.SnapshotStore) *TrackerService {
	return &TrackerService{store: store}
}

// CreateEpic creates a new epic with status Open and no stories, and
// returns its id.
func (s *TrackerService) CreateEpic(ctx context.Context, name, description string) (int, error) {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return 0, err
	}

	e, err := epic.New(snapshot.NextItemID(), name, description)
	if err != nil {
		return 0, err
	}
	snapshot.Epics[e.ID()] = e

	if err := s.store.Persist(ctx, snapshot); err != nil {
		return 0, err
	}
	return e.ID(), nil
}

// CreateStory creates a new story under the given epic and returns its id.
// It fails with NotFoundError when the epic is absent; the id counter is
// left untouched in that case.
func (s *TrackerService) CreateStory(ctx context.Context, name, description string, epicID int) (int, error) {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return 0, err
	}

	e, ok := snapshot.Epics[epicID]
	if !ok {
		return 0, &repository.NotFoundError{Kind: repository.KindEpic, ID: epicID}
	}

	st, err := story.New(snapshot.NextItemID(), epicID, name, description)
	if err != nil {
		return 0, err
	}
	snapshot.Stories[st.ID()] = st
	e.AddStory(st.ID())

	if err := s.store.Persist(ctx, snapshot); err != nil {
		return 0, err
	}
	return st.ID(), nil
}

// GetEpic reads a single epic. Absence is not an error: it is reported as
// found == false with a nil error.
func (s *TrackerService) GetEpic(ctx context.Context, id int) (*epic.Epic, bool, error) {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return nil, false, err
	}
	e, ok := snapshot.Epics[id]
	return e, ok, nil
}

// GetStory reads a single story. Absence is not an error.
func (s *TrackerService) GetStory(ctx context.Context, id int) (*story.Story, bool, error) {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return nil, false, err
	}
	st, ok := snapshot.Stories[id]
	return st, ok, nil
}

// ListEpics returns all epics ordered by id
func (s *TrackerService) ListEpics(ctx context.Context) ([]*epic.Epic, error) {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return nil, err
	}
	epics := make([]*epic.Epic, 0, len(snapshot.Epics))
	for _, id := range snapshot.EpicIDs() {
		epics = append(epics, snapshot.Epics[id])
	}
	return epics, nil
}

// ListStories returns the given epic's stories ordered by id. It fails
// with NotFoundError when the epic is absent.
func (s *TrackerService) ListStories(ctx context.Context, epicID int) ([]*story.Story, error) {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := snapshot.Epics[epicID]
	if !ok {
		return nil, &repository.NotFoundError{Kind: repository.KindEpic, ID: epicID}
	}

	ids := e.StoryIDs()
	sort.Ints(ids)
	stories := make([]*story.Story, 0, len(ids))
	for _, id := range ids {
		if st, ok := snapshot.Stories[id]; ok {
			stories = append(stories, st)
		}
	}
	return stories, nil
}

// UpdateEpicStatus applies the lifecycle operation that reaches the target
// status. A rejected transition fails with TransitionError and persists
// nothing.
func (s *TrackerService) UpdateEpicStatus(ctx context.Context, id int, target model.Status) error {
	op, ok := model.OperationFor(target)
	if !ok {
		return fmt.Errorf("invalid status %q", target)
	}

	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return err
	}
	e, found := snapshot.Epics[id]
	if !found {
		return &repository.NotFoundError{Kind: repository.KindEpic, ID: id}
	}
	if err := e.ApplyStatus(op); err != nil {
		return err
	}
	return s.store.Persist(ctx, snapshot)
}

// UpdateStoryStatus applies the lifecycle operation that reaches the
// target status on a story.
func (s *TrackerService) UpdateStoryStatus(ctx context.Context, id int, target model.Status) error {
	op, ok := model.OperationFor(target)
	if !ok {
		return fmt.Errorf("invalid status %q", target)
	}

	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return err
	}
	st, found := snapshot.Stories[id]
	if !found {
		return &repository.NotFoundError{Kind: repository.KindStory, ID: id}
	}
	if err := st.ApplyStatus(op); err != nil {
		return err
	}
	return s.store.Persist(ctx, snapshot)
}

// DeleteEpic removes an epic and, in the same cycle, every story it
// references. No intermediate state is ever observable and the id counter
// is unchanged.
func (s *TrackerService) DeleteEpic(ctx context.Context, id int) error {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return err
	}
	e, ok := snapshot.Epics[id]
	if !ok {
		return &repository.NotFoundError{Kind: repository.KindEpic, ID: id}
	}

	for _, storyID := range e.StoryIDs() {
		delete(snapshot.Stories, storyID)
	}
	delete(snapshot.Epics, id)

	return s.store.Persist(ctx, snapshot)
}

// DeleteStory removes a story from its epic. A story that exists but is
// not referenced by the given epic fails with LinkageError rather than
// being deleted through the wrong parent.
func (s *TrackerService) DeleteStory(ctx context.Context, epicID, storyID int) error {
	snapshot, err := s.store.Retrieve(ctx)
	if err != nil {
		return err
	}
	e, ok := snapshot.Epics[epicID]
	if !ok {
		return &repository.NotFoundError{Kind: repository.KindEpic, ID: epicID}
	}
	if _, ok := snapshot.Stories[storyID]; !ok {
		return &repository.NotFoundError{Kind: repository.KindStory, ID: storyID}
	}
	if !e.RemoveStory(storyID) {
		return &repository.LinkageError{EpicID: epicID, StoryID: storyID}
	}
	delete(snapshot.Stories, storyID)

	return s.store.Persist(ctx, snapshot)
}
