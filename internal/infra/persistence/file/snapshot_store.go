package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
	"github.com/gabriel1680/jira-cli/internal/domain/model/epic"
	"github.com/gabriel1680/jira-cli/internal/domain/model/story"
	"github.com/gabriel1680/jira-cli/internal/domain/repository"
)

// SnapshotStore persists the tracker state as a single JSON document.
//
// The wire form keys epics and stories by decimal string id. A story record
// does not carry its epic linkage; it is reconstructed on load from the
// owning epic's stories array.
type SnapshotStore struct {
	fs   afero.Fs
	path string
}

// NewSnapshotStore creates a store writing to path on the given filesystem
func NewSnapshotStore(fs afero.Fs, path string) *SnapshotStore {
	return &SnapshotStore{fs: fs, path: path}
}

type epicDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Stories     []int  `json:"stories"`
}

type storyDoc struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type snapshotDoc struct {
	LastItemID int                 `json:"last_item_id"`
	Epics      map[string]epicDoc  `json:"epics"`
	Stories    map[string]storyDoc `json:"stories"`
}

// Retrieve loads the snapshot from disk. A missing file reads as the empty
// snapshot so the first run bootstraps without a separate init step.
func (s *SnapshotStore) Retrieve(ctx context.Context) (*repository.Snapshot, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return repository.NewSnapshot(), nil
		}
		return nil, &repository.StoreError{Kind: repository.StoreErrIO, Err: err}
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &repository.StoreError{Kind: repository.StoreErrParse, Err: err}
	}

	snapshot, err := fromDoc(&doc)
	if err != nil {
		return nil, &repository.StoreError{Kind: repository.StoreErrParse, Err: err}
	}
	return snapshot, nil
}

// Persist writes the snapshot to disk atomically
func (s *SnapshotStore) Persist(ctx context.Context, snapshot *repository.Snapshot) error {
	data, err := json.MarshalIndent(toDoc(snapshot), "", "  ")
	if err != nil {
		return &repository.StoreError{Kind: repository.StoreErrIO, Err: err}
	}
	if err := writeFileAtomic(s.fs, s.path, data); err != nil {
		return &repository.StoreError{Kind: repository.StoreErrIO, Err: err}
	}
	return nil
}

func toDoc(snapshot *repository.Snapshot) *snapshotDoc {
	doc := &snapshotDoc{
		LastItemID: snapshot.LastItemID,
		Epics:      map[string]epicDoc{},
		Stories:    map[string]storyDoc{},
	}
	for id, e := range snapshot.Epics {
		doc.Epics[strconv.Itoa(id)] = epicDoc{
			Name:        e.Name(),
			Description: e.Description(),
			Status:      e.Status().String(),
			Stories:     e.StoryIDs(),
		}
	}
	for id, st := range snapshot.Stories {
		doc.Stories[strconv.Itoa(id)] = storyDoc{
			Name:        st.Name(),
			Description: st.Description(),
			Status:      st.Status().String(),
		}
	}
	return doc
}

func fromDoc(doc *snapshotDoc) (*repository.Snapshot, error) {
	snapshot := repository.NewSnapshot()
	snapshot.LastItemID = doc.LastItemID

	// First pass: epics, recording which epic owns each story id.
	owners := map[int]int{}
	for key, e := range doc.Epics {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("epic key %q: %w", key, err)
		}
		status, err := parseStatus(e.Status)
		if err != nil {
			return nil, fmt.Errorf("epic %d: %w", id, err)
		}
		for _, storyID := range e.Stories {
			if _, ok := doc.Stories[strconv.Itoa(storyID)]; !ok {
				return nil, fmt.Errorf("epic %d references missing story %d", id, storyID)
			}
			owners[storyID] = id
		}
		snapshot.Epics[id] = epic.Reconstruct(id, e.Name, e.Description, status, e.Stories)
	}

	// Second pass: stories, with the epic linkage reconstructed.
	for key, st := range doc.Stories {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("story key %q: %w", key, err)
		}
		status, err := parseStatus(st.Status)
		if err != nil {
			return nil, fmt.Errorf("story %d: %w", id, err)
		}
		epicID, ok := owners[id]
		if !ok {
			return nil, fmt.Errorf("story %d is not referenced by any epic", id)
		}
		snapshot.Stories[id] = story.Reconstruct(id, epicID, st.Name, st.Description, status)
	}

	return snapshot, nil
}

func parseID(key string) (int, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}

func parseStatus(tag string) (model.Status, error) {
	status := model.Status(tag)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown status %q", tag)
	}
	return status, nil
}
