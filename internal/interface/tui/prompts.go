package tui

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/text/unicode/norm"

	"github.com/gabriel1680/jira-cli/internal/domain/model"
)

// EpicInput is the data collected to create an epic
type EpicInput struct {
	Name        string
	Description string
}

// StoryInput is the data collected to create a story
type StoryInput struct {
	Name        string
	Description string
}

// Prompts is the interactive-input collaborator. Each field may report
// "no data" (ok == false), which callers treat as user cancellation, not
// an error. The func-field shape keeps every prompt stubbable in tests.
type Prompts struct {
	CreateEpic         func() (EpicInput, bool)
	CreateStory        func() (StoryInput, bool)
	ConfirmDeleteEpic  func() bool
	ConfirmDeleteStory func() bool
	SelectStatus       func() (model.Status, bool)
}

// NewPrompts returns the promptui-backed default prompts
func NewPrompts() Prompts {
	return Prompts{
		CreateEpic: func() (EpicInput, bool) {
			name, ok := textPrompt("Epic Name", true)
			if !ok {
				return EpicInput{}, false
			}
			description, ok := textPrompt("Epic Description", false)
			if !ok {
				return EpicInput{}, false
			}
			return EpicInput{Name: name, Description: description}, true
		},
		CreateStory: func() (StoryInput, bool) {
			name, ok := textPrompt("Story Name", true)
			if !ok {
				return StoryInput{}, false
			}
			description, ok := textPrompt("Story Description", false)
			if !ok {
				return StoryInput{}, false
			}
			return StoryInput{Name: name, Description: description}, true
		},
		ConfirmDeleteEpic:  func() bool { return confirmPrompt("Delete this epic and all its stories") },
		ConfirmDeleteStory: func() bool { return confirmPrompt("Delete this story") },
		SelectStatus:       selectStatusPrompt,
	}
}

var statusChoices = []model.Status{
	model.StatusOpen,
	model.StatusInProgress,
	model.StatusResolved,
	model.StatusClosed,
}

func selectStatusPrompt() (model.Status, bool) {
	items := make([]string, len(statusChoices))
	for i, s := range statusChoices {
		items[i] = s.String()
	}
	sel := promptui.Select{Label: "New Status", Items: items}
	idx, _, err := sel.Run()
	if err != nil {
		return "", false
	}
	return statusChoices[idx], true
}

// textPrompt reads one line. Names are NFC-normalized so visually equal
// titles compare equal regardless of the input method.
func textPrompt(label string, required bool) (string, bool) {
	prompt := promptui.Prompt{Label: label}
	if required {
		prompt.Validate = func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("cannot be empty")
			}
			return nil
		}
	}
	value, err := prompt.Run()
	if err != nil {
		return "", false
	}
	return norm.NFC.String(strings.TrimSpace(value)), true
}

func confirmPrompt(label string) bool {
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	// IsConfirm reports "no" as an error; either way a non-nil error
	// means no deletion.
	_, err := prompt.Run()
	return err == nil
}
