package tui

import (
	"context"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
	"github.com/gabriel1680/jira-cli/internal/domain/model/epic"
	"github.com/gabriel1680/jira-cli/internal/domain/model/story"
)

// ScreenKind discriminates the screen variants
type ScreenKind int

const (
	ScreenHome ScreenKind = iota + 1
	ScreenEpicDetail
	ScreenStoryDetail
)

// Screen is a tagged variant over the screen kinds. It carries only the id
// parameters its kind needs and stays pure data; rendering and input
// parsing live on the UI.
type Screen struct {
	Kind    ScreenKind
	EpicID  int
	StoryID int
}

// HomeScreen returns the root screen
func HomeScreen() Screen {
	return Screen{Kind: ScreenHome}
}

// EpicDetailScreen returns the detail screen for an epic
func EpicDetailScreen(epicID int) Screen {
	return Screen{Kind: ScreenEpicDetail, EpicID: epicID}
}

// StoryDetailScreen returns the detail screen for a story under its epic
func StoryDetailScreen(epicID, storyID int) Screen {
	return Screen{Kind: ScreenStoryDetail, EpicID: epicID, StoryID: storyID}
}

// Service is the tracker surface the screens and navigator consume
type Service interface {
	CreateEpic(ctx context.Context, name, description string) (int, error)
	CreateStory(ctx context.Context, name, description string, epicID int) (int, error)
	GetEpic(ctx context.Context, id int) (*epic.Epic, bool, error)
	GetStory(ctx context.Context, id int) (*story.Story, bool, error)
	ListEpics(ctx context.Context) ([]*epic.Epic, error)
	ListStories(ctx context.Context, epicID int) ([]*story.Story, error)
	UpdateEpicStatus(ctx context.Context, id int, target model.Status) error
	UpdateStoryStatus(ctx context.Context, id int, target model.Status) error
	DeleteEpic(ctx context.Context, id int) error
	DeleteStory(ctx context.Context, epicID, storyID int) error
}
