package tui

// ActionKind discriminates the user actions a screen can produce
type ActionKind int

const (
	ActionNavigateToEpicDetail ActionKind = iota + 1
	ActionNavigateToStoryDetail
	ActionNavigateBack
	ActionCreateEpic
	ActionCreateStory
	ActionUpdateEpicStatus
	ActionUpdateStoryStatus
	ActionDeleteEpic
	ActionDeleteStory
	ActionExit
)

// Action is a user-issued command carrying only the ids its kind needs
type Action struct {
	Kind    ActionKind
	EpicID  int
	StoryID int
}
