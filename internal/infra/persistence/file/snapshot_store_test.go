package file

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
	"github.com/gabriel1680/jira-cli/internal/domain/model/epic"
	"github.com/gabriel1680/jira-cli/internal/domain/model/story"
	"github.com/gabriel1680/jira-cli/internal/domain/repository"
)

const testPath = "data/db.json"

func newStore() (*SnapshotStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	return NewSnapshotStore(fs, testPath), fs
}

func TestSnapshotStore_Retrieve_MissingFile(t *testing.T) {
	store, _ := newStore()

	snapshot, err := store.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.LastItemID)
	assert.Empty(t, snapshot.Epics)
	assert.Empty(t, snapshot.Stories)
}

func TestSnapshotStore_Retrieve_InvalidJSON(t *testing.T) {
	store, fs := newStore()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(`{ "last_item_id": 0 epics`), 0o644))

	_, err := store.Retrieve(context.Background())
	require.Error(t, err)

	var storeErr *repository.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, repository.StoreErrParse, storeErr.Kind)
}

func TestSnapshotStore_Retrieve_WireFormat(t *testing.T) {
	store, fs := newStore()
	doc := `{
	  "last_item_id": 3,
	  "epics": {
	    "1": {"name": "Backend", "description": "server work", "status": "InProgress", "stories": [2, 3]}
	  },
	  "stories": {
	    "2": {"name": "Login", "description": "login form", "status": "Open"},
	    "3": {"name": "Signup", "description": "signup form", "status": "Closed"}
	  }
	}`
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(doc), 0o644))

	snapshot, err := store.Retrieve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.LastItemID)
	require.Contains(t, snapshot.Epics, 1)
	e := snapshot.Epics[1]
	assert.Equal(t, "Backend", e.Name())
	assert.Equal(t, model.StatusInProgress, e.Status())
	assert.Equal(t, []int{2, 3}, e.StoryIDs())

	// The story's epic linkage is not on the wire; it is reconstructed
	// from the owning epic's stories array.
	require.Contains(t, snapshot.Stories, 2)
	assert.Equal(t, 1, snapshot.Stories[2].EpicID())
	assert.Equal(t, 1, snapshot.Stories[3].EpicID())
	assert.Equal(t, model.StatusClosed, snapshot.Stories[3].Status())
}

func TestSnapshotStore_Retrieve_IntegrityFailures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown status tag",
			doc:  `{"last_item_id": 1, "epics": {"1": {"name": "a", "description": "", "status": "Done", "stories": []}}, "stories": {}}`,
		},
		{
			name: "epic references missing story",
			doc:  `{"last_item_id": 2, "epics": {"1": {"name": "a", "description": "", "status": "Open", "stories": [2]}}, "stories": {}}`,
		},
		{
			name: "orphan story",
			doc:  `{"last_item_id": 2, "epics": {}, "stories": {"2": {"name": "s", "description": "", "status": "Open"}}}`,
		},
		{
			name: "non-numeric epic key",
			doc:  `{"last_item_id": 1, "epics": {"one": {"name": "a", "description": "", "status": "Open", "stories": []}}, "stories": {}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, fs := newStore()
			require.NoError(t, afero.WriteFile(fs, testPath, []byte(tt.doc), 0o644))

			_, err := store.Retrieve(context.Background())
			var storeErr *repository.StoreError
			require.ErrorAs(t, err, &storeErr)
			assert.Equal(t, repository.StoreErrParse, storeErr.Kind)
		})
	}
}

func TestSnapshotStore_PersistAndRetrieve(t *testing.T) {
	store, fs := newStore()
	ctx := context.Background()

	snapshot := repository.NewSnapshot()
	snapshot.LastItemID = 2
	snapshot.Epics[1] = epic.Reconstruct(1, "Backend", "server work", model.StatusOpen, []int{2})
	snapshot.Stories[2] = story.Reconstruct(2, 1, "Login", "login form", model.StatusResolved)

	require.NoError(t, store.Persist(ctx, snapshot))

	// Status serializes as the literal tag strings.
	data, err := afero.ReadFile(fs, testPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"last_item_id": 2`)
	assert.Contains(t, string(data), `"Resolved"`)

	loaded, err := store.Retrieve(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.LastItemID)
	assert.Equal(t, []int{2}, loaded.Epics[1].StoryIDs())
	assert.Equal(t, 1, loaded.Stories[2].EpicID())
	assert.Equal(t, model.StatusResolved, loaded.Stories[2].Status())
}

func TestSnapshotStore_Persist_LeavesNoTempFiles(t *testing.T) {
	store, fs := newStore()
	require.NoError(t, store.Persist(context.Background(), repository.NewSnapshot()))

	infos, err := afero.ReadDir(fs, "data")
	require.NoError(t, err)
	for _, info := range infos {
		if strings.HasPrefix(info.Name(), ".tmp-") {
			t.Errorf("Expected no temp file left behind, found %s", info.Name())
		}
	}
}

func TestSnapshotStore_Persist_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store := NewSnapshotStore(fs, testPath)

	err := store.Persist(context.Background(), repository.NewSnapshot())
	var storeErr *repository.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, repository.StoreErrIO, storeErr.Kind)
}
