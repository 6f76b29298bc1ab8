package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/gabriel1680/jira-cli/internal/domain/repository"
)

// UI renders screens and parses raw input into actions. Unrecognized
// input yields a nil action, never an error.
type UI struct {
	svc Service
	out io.Writer
}

// NewUI creates a UI over the given service, writing to out
func NewUI(svc Service, out io.Writer) *UI {
	return &UI{svc: svc, out: out}
}

// Render draws the given screen from current repository state
func (u *UI) Render(ctx context.Context, s Screen) error {
	switch s.Kind {
	case ScreenHome:
		return u.renderHome(ctx)
	case ScreenEpicDetail:
		return u.renderEpicDetail(ctx, s.EpicID)
	case ScreenStoryDetail:
		return u.renderStoryDetail(ctx, s.EpicID, s.StoryID)
	default:
		return fmt.Errorf("unknown screen kind %d", s.Kind)
	}
}

// HandleInput parses one line of raw input in the context of the given
// screen. A nil action with a nil error means the input was unrecognized.
func (u *UI) HandleInput(ctx context.Context, s Screen, input string) (*Action, error) {
	switch s.Kind {
	case ScreenHome:
		return u.handleHomeInput(ctx, input)
	case ScreenEpicDetail:
		return u.handleEpicDetailInput(ctx, s.EpicID, input)
	case ScreenStoryDetail:
		return u.handleStoryDetailInput(s, input)
	default:
		return nil, fmt.Errorf("unknown screen kind %d", s.Kind)
	}
}

func (u *UI) handleHomeInput(ctx context.Context, input string) (*Action, error) {
	switch input {
	case "q":
		return &Action{Kind: ActionExit}, nil
	case "c":
		return &Action{Kind: ActionCreateEpic}, nil
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		return nil, nil
	}
	_, found, err := u.svc.GetEpic(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &Action{Kind: ActionNavigateToEpicDetail, EpicID: id}, nil
}

func (u *UI) handleEpicDetailInput(ctx context.Context, epicID int, input string) (*Action, error) {
	switch input {
	case "p":
		return &Action{Kind: ActionNavigateBack}, nil
	case "u":
		return &Action{Kind: ActionUpdateEpicStatus, EpicID: epicID}, nil
	case "d":
		return &Action{Kind: ActionDeleteEpic, EpicID: epicID}, nil
	case "c":
		return &Action{Kind: ActionCreateStory, EpicID: epicID}, nil
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		return nil, nil
	}
	st, found, err := u.svc.GetStory(ctx, id)
	if err != nil {
		return nil, err
	}
	// Only stories owned by this epic are navigable from its screen.
	if !found || st.EpicID() != epicID {
		return nil, nil
	}
	return &Action{Kind: ActionNavigateToStoryDetail, EpicID: epicID, StoryID: id}, nil
}

func (u *UI) handleStoryDetailInput(s Screen, input string) (*Action, error) {
	switch input {
	case "p":
		return &Action{Kind: ActionNavigateBack}, nil
	case "u":
		return &Action{Kind: ActionUpdateStoryStatus, StoryID: s.StoryID}, nil
	case "d":
		return &Action{Kind: ActionDeleteStory, EpicID: s.EpicID, StoryID: s.StoryID}, nil
	}
	return nil, nil
}

func (u *UI) renderHome(ctx context.Context) error {
	epics, err := u.svc.ListEpics(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(u.out, headerStyle.Render(" EPICS "))
	fmt.Fprintln(u.out, tableHeadStyle.Render(tableRow(idColWidth, nameColWidth, statusColWidth, "id", "name", "status")))
	for _, e := range epics {
		fmt.Fprintln(u.out, tableRow(idColWidth, nameColWidth, statusColWidth,
			strconv.Itoa(e.ID()), e.Name(), e.Status().String()))
	}
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, hintStyle.Render("[q] quit | [c] create epic | [:id:] navigate to epic"))
	return nil
}

func (u *UI) renderEpicDetail(ctx context.Context, epicID int) error {
	e, found, err := u.svc.GetEpic(ctx, epicID)
	if err != nil {
		return err
	}
	if !found {
		return &repository.NotFoundError{Kind: repository.KindEpic, ID: epicID}
	}
	stories, err := u.svc.ListStories(ctx, epicID)
	if err != nil {
		return err
	}

	fmt.Fprintln(u.out, headerStyle.Render(" EPIC "))
	fmt.Fprintln(u.out, tableHeadStyle.Render(detailRow("id", "name", "description", "status")))
	fmt.Fprintln(u.out, detailRow(strconv.Itoa(e.ID()), e.Name(), e.Description(), e.Status().String()))
	fmt.Fprintln(u.out)

	fmt.Fprintln(u.out, headerStyle.Render(" STORIES "))
	fmt.Fprintln(u.out, tableHeadStyle.Render(tableRow(idColWidth, nameColWidth, statusColWidth, "id", "name", "status")))
	for _, st := range stories {
		fmt.Fprintln(u.out, tableRow(idColWidth, nameColWidth, statusColWidth,
			strconv.Itoa(st.ID()), st.Name(), st.Status().String()))
	}
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, hintStyle.Render("[p] previous | [u] update epic | [d] delete epic | [c] create story | [:id:] navigate to story"))
	return nil
}

func (u *UI) renderStoryDetail(ctx context.Context, epicID, storyID int) error {
	st, found, err := u.svc.GetStory(ctx, storyID)
	if err != nil {
		return err
	}
	if !found {
		return &repository.NotFoundError{Kind: repository.KindStory, ID: storyID}
	}

	fmt.Fprintln(u.out, headerStyle.Render(" STORY "))
	fmt.Fprintln(u.out, tableHeadStyle.Render(detailRow("id", "name", "description", "status")))
	fmt.Fprintln(u.out, detailRow(strconv.Itoa(st.ID()), st.Name(), st.Description(), st.Status().String()))
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, hintStyle.Render("[p] previous | [u] update story | [d] delete story"))
	return nil
}
