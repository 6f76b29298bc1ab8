package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriel1680/jira-cli/internal/application/service"
	"github.com/gabriel1680/jira-cli/internal/domain/model"
	"github.com/gabriel1680/jira-cli/internal/infra/persistence/file"
	"github.com/gabriel1680/jira-cli/internal/interface/tui"
)

func scriptedPrompts() tui.Prompts {
	return tui.Prompts{
		CreateEpic:         func() (tui.EpicInput, bool) { return tui.EpicInput{Name: "Backend", Description: "server"}, true },
		CreateStory:        func() (tui.StoryInput, bool) { return tui.StoryInput{Name: "Login", Description: "form"}, true },
		ConfirmDeleteEpic:  func() bool { return true },
		ConfirmDeleteStory: func() bool { return true },
		SelectStatus:       func() (model.Status, bool) { return model.StatusInProgress, true },
	}
}

func TestApp_QuitImmediately(t *testing.T) {
	svc := service.NewTrackerService(file.NewSnapshotStore(afero.NewMemMapFs(), "db.json"))
	var out bytes.Buffer

	a := NewWithPrompts(svc, scriptedPrompts(), strings.NewReader("q\n"), &out)
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "EPICS")
}

func TestApp_EndsOnEOF(t *testing.T) {
	svc := service.NewTrackerService(file.NewSnapshotStore(afero.NewMemMapFs(), "db.json"))

	a := NewWithPrompts(svc, scriptedPrompts(), strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, a.Run(context.Background()))
}

func TestApp_ScriptedSession(t *testing.T) {
	fs := afero.NewMemMapFs()
	svc := service.NewTrackerService(file.NewSnapshotStore(fs, "db.json"))
	var out bytes.Buffer

	// create an epic, enter it, create a story, enter it, mark it
	// in-progress, back out twice, quit
	script := "c\n1\nc\n2\nu\np\np\nq\n"
	a := NewWithPrompts(svc, scriptedPrompts(), strings.NewReader(script), &out)
	require.NoError(t, a.Run(context.Background()))

	ctx := context.Background()
	st, found, err := svc.GetStory(ctx, 2)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.StatusInProgress, st.Status())
	assert.Equal(t, 1, st.EpicID())

	// The session persisted through the store.
	data, err := afero.ReadFile(fs, "db.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Login"`)
}

func TestApp_HaltsOnCorruptSnapshot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "db.json", []byte("not json"), 0o644))
	svc := service.NewTrackerService(file.NewSnapshotStore(fs, "db.json"))
	var out bytes.Buffer

	a := NewWithPrompts(svc, scriptedPrompts(), strings.NewReader("q\nq\nq\n"), &out)
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Error rendering page")
}
