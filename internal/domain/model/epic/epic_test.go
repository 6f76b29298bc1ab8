package epic

import (
	"testing"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
)

func TestNew(t *testing.T) {
	e, err := New(1, "Backend", "Server side work")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if e.ID() != 1 {
		t.Errorf("Expected id 1, got %d", e.ID())
	}
	if e.Name() != "Backend" {
		t.Errorf("Expected name 'Backend', got %q", e.Name())
	}
	if e.Description() != "Server side work" {
		t.Errorf("Expected description 'Server side work', got %q", e.Description())
	}
	if e.Status() != model.StatusOpen {
		t.Errorf("Expected new epic to be Open, got %s", e.Status())
	}
	if len(e.StoryIDs()) != 0 {
		t.Error("New epic should not reference any stories")
	}
}

func TestNew_EmptyName(t *testing.T) {
	if _, err := New(1, "", "description"); err == nil {
		t.Fatal("Expected an error for empty name")
	}
}

func TestEpic_AddStory(t *testing.T) {
	e, _ := New(1, "Backend", "")

	e.AddStory(2)
	e.AddStory(3)
	e.AddStory(2) // duplicate, no-op

	ids := e.StoryIDs()
	if len(ids) != 2 {
		t.Fatalf("Expected 2 story ids, got %d", len(ids))
	}
	if ids[0] != 2 || ids[1] != 3 {
		t.Errorf("Expected insertion order [2 3], got %v", ids)
	}
	if !e.HasStory(2) || !e.HasStory(3) {
		t.Error("Expected added stories to be referenced")
	}
	if e.HasStory(4) {
		t.Error("Did not expect story 4 to be referenced")
	}
}

func TestEpic_RemoveStory(t *testing.T) {
	e, _ := New(1, "Backend", "")
	e.AddStory(2)
	e.AddStory(3)

	if !e.RemoveStory(2) {
		t.Fatal("Expected RemoveStory to report the id was referenced")
	}
	if e.HasStory(2) {
		t.Error("Expected story 2 to be gone")
	}
	if got := e.StoryIDs(); len(got) != 1 || got[0] != 3 {
		t.Errorf("Expected remaining ids [3], got %v", got)
	}
	if e.RemoveStory(2) {
		t.Error("Expected removing an absent id to report false")
	}
}

func TestEpic_StoryIDs_ReturnsCopy(t *testing.T) {
	e, _ := New(1, "Backend", "")
	e.AddStory(2)

	ids := e.StoryIDs()
	ids[0] = 99

	if !e.HasStory(2) {
		t.Error("Mutating the returned slice must not affect the epic")
	}
}

func TestEpic_ApplyStatus(t *testing.T) {
	e, _ := New(1, "Backend", "")

	if err := e.ApplyStatus(model.OpStart); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if e.Status() != model.StatusInProgress {
		t.Errorf("Expected InProgress, got %s", e.Status())
	}

	if err := e.ApplyStatus(model.OpResolve); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// Rejected transition leaves the status unchanged.
	if err := e.ApplyStatus(model.OpStart); err == nil {
		t.Fatal("Expected start from Resolved to fail")
	}
	if e.Status() != model.StatusResolved {
		t.Errorf("Expected status to remain Resolved, got %s", e.Status())
	}
}

func TestReconstruct(t *testing.T) {
	e := Reconstruct(7, "Backend", "desc", model.StatusClosed, []int{8, 9})

	if e.ID() != 7 || e.Status() != model.StatusClosed {
		t.Errorf("Reconstructed epic mismatch: id=%d status=%s", e.ID(), e.Status())
	}
	if got := e.StoryIDs(); len(got) != 2 || got[0] != 8 || got[1] != 9 {
		t.Errorf("Expected story ids [8 9], got %v", got)
	}

	// nil story ids normalize to an empty list
	empty := Reconstruct(1, "a", "", model.StatusOpen, nil)
	if empty.StoryIDs() == nil {
		t.Error("Expected non-nil story id list")
	}
}
