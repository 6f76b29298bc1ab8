package tui

import (
	"context"
	"fmt"
)

// Navigator owns the screen stack and dispatches actions to service calls
// and stack mutations. The stack starts with the home screen; an empty
// stack signals the interaction loop to stop.
type Navigator struct {
	stack   []Screen
	svc     Service
	prompts Prompts
}

// NewNavigator creates a navigator with the home screen on the stack
func NewNavigator(svc Service, prompts Prompts) *Navigator {
	return &Navigator{
		stack:   []Screen{HomeScreen()},
		svc:     svc,
		prompts: prompts,
	}
}

// CurrentScreen returns the topmost screen; ok is false once the stack is
// empty.
func (n *Navigator) CurrentScreen() (Screen, bool) {
	if len(n.stack) == 0 {
		return Screen{}, false
	}
	return n.stack[len(n.stack)-1], true
}

// Depth returns the current stack depth
func (n *Navigator) Depth() int {
	return len(n.stack)
}

// HandleAction executes one action. Service failures are returned to the
// caller for display and leave the stack unchanged, except that a
// successful delete pops the screen whose entity no longer exists.
// Prompt cancellation is a no-op.
func (n *Navigator) HandleAction(ctx context.Context, action Action) error {
	switch action.Kind {
	case ActionNavigateToEpicDetail:
		n.push(EpicDetailScreen(action.EpicID))

	case ActionNavigateToStoryDetail:
		n.push(StoryDetailScreen(action.EpicID, action.StoryID))

	case ActionNavigateBack:
		n.pop()

	case ActionCreateEpic:
		input, ok := n.prompts.CreateEpic()
		if !ok {
			return nil
		}
		if _, err := n.svc.CreateEpic(ctx, input.Name, input.Description); err != nil {
			return fmt.Errorf("failed to create epic: %w", err)
		}

	case ActionCreateStory:
		input, ok := n.prompts.CreateStory()
		if !ok {
			return nil
		}
		if _, err := n.svc.CreateStory(ctx, input.Name, input.Description, action.EpicID); err != nil {
			return fmt.Errorf("failed to create story: %w", err)
		}

	case ActionUpdateEpicStatus:
		status, ok := n.prompts.SelectStatus()
		if !ok {
			return nil
		}
		if err := n.svc.UpdateEpicStatus(ctx, action.EpicID, status); err != nil {
			return fmt.Errorf("failed to update epic: %w", err)
		}

	case ActionUpdateStoryStatus:
		status, ok := n.prompts.SelectStatus()
		if !ok {
			return nil
		}
		if err := n.svc.UpdateStoryStatus(ctx, action.StoryID, status); err != nil {
			return fmt.Errorf("failed to update story: %w", err)
		}

	case ActionDeleteEpic:
		if !n.prompts.ConfirmDeleteEpic() {
			return nil
		}
		if err := n.svc.DeleteEpic(ctx, action.EpicID); err != nil {
			return fmt.Errorf("failed to delete epic: %w", err)
		}
		n.pop()

	case ActionDeleteStory:
		if !n.prompts.ConfirmDeleteStory() {
			return nil
		}
		if err := n.svc.DeleteStory(ctx, action.EpicID, action.StoryID); err != nil {
			return fmt.Errorf("failed to delete story: %w", err)
		}
		n.pop()

	case ActionExit:
		n.stack = nil

	default:
		return fmt.Errorf("unknown action kind %d", action.Kind)
	}

	return nil
}

func (n *Navigator) push(s Screen) {
	n.stack = append(n.stack, s)
}

// pop removes the top screen; popping an empty stack is a safe no-op.
func (n *Navigator) pop() {
	if len(n.stack) > 0 {
		n.stack = n.stack[:len(n.stack)-1]
	}
}
