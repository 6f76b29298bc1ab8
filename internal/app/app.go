package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/gabriel1680/jira-cli/internal/application/service"
	"github.com/gabriel1680/jira-cli/internal/domain/repository"
	"github.com/gabriel1680/jira-cli/internal/infra/config"
	"github.com/gabriel1680/jira-cli/internal/infra/logging"
	"github.com/gabriel1680/jira-cli/internal/infra/persistence/file"
	"github.com/gabriel1680/jira-cli/internal/interface/tui"
)

// App wires the snapshot store, tracker service, UI and navigator, and
// runs the interaction loop.
type App struct {
	nav *tui.Navigator
	ui  *tui.UI
	in  *bufio.Scanner
	out io.Writer
	log logging.Logger
}

// New builds an App on the given filesystem and terminal streams.
// Configuration failures fall back to defaults with a warning; the loop
// must stay startable on a fresh machine.
func New(fs afero.Fs, in io.Reader, out io.Writer) *App {
	log := logging.GetLogger()

	settings, err := config.Load(fs)
	if err != nil {
		log.Warn("failed to load settings, using defaults: %v", err)
		settings = config.Settings{DBPath: ".jira-cli/db.json"}
	}

	store := file.NewSnapshotStore(fs, settings.DBPath)
	svc := service.NewTrackerService(store)
	return NewWithPrompts(svc, tui.NewPrompts(), in, out)
}

// NewWithPrompts builds an App over an existing service and prompt set.
// Tests use it to substitute canned prompts.
func NewWithPrompts(svc tui.Service, prompts tui.Prompts, in io.Reader, out io.Writer) *App {
	return &App{
		nav: tui.NewNavigator(svc, prompts),
		ui:  tui.NewUI(svc, out),
		in:  bufio.NewScanner(in),
		out: out,
		log: logging.GetLogger(),
	}
}

// Run executes one render→input→action cycle at a time until the screen
// stack empties or an unrecoverable error halts the loop. Store errors are
// unrecoverable: once a snapshot fails to round-trip the session ends.
func (a *App) Run(ctx context.Context) error {
	for {
		screen, ok := a.nav.CurrentScreen()
		if !ok {
			return nil
		}

		a.clearScreen()
		if err := a.ui.Render(ctx, screen); err != nil {
			a.reportAndWait("Error rendering page", err)
			return nil
		}

		input, ok := a.readLine()
		if !ok {
			return nil
		}

		action, err := a.ui.HandleInput(ctx, screen, input)
		if err != nil {
			a.reportAndWait("Error handling input", err)
			if isStoreError(err) {
				return nil
			}
			continue
		}
		if action == nil {
			continue
		}

		if err := a.nav.HandleAction(ctx, *action); err != nil {
			a.reportAndWait("Error processing action", err)
			if isStoreError(err) {
				return nil
			}
		}
	}
}

func (a *App) clearScreen() {
	fmt.Fprint(a.out, "\033[2J\033[H")
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

// reportAndWait shows an error and blocks until the user acknowledges it,
// so the message is not wiped by the next screen clear.
func (a *App) reportAndWait(prefix string, err error) {
	a.log.Error("%s: %v", prefix, err)
	fmt.Fprintf(a.out, "%s: %v\nPress Enter to continue...\n", prefix, err)
	a.in.Scan()
}

func isStoreError(err error) bool {
	var storeErr *repository.StoreError
	return errors.As(err, &storeErr)
}
