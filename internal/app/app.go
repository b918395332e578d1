package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/appswitch/appswitch/internal/apps"
	"github.com/appswitch/appswitch/internal/logging/events"
	"github.com/appswitch/appswitch/internal/picker"
	"github.com/appswitch/appswitch/internal/state"
	"github.com/appswitch/appswitch/internal/theme"
	"github.com/appswitch/appswitch/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var styles = theme.Default()

// Mode selects the top-level behaviour chosen on the command line.
type Mode string

const (
	// ModeList browses running applications interactively.
	ModeList Mode = "list"
	// ModeOpen launches an application, interactively when no name is given.
	ModeOpen Mode = "open"
	// ModeKill quits an application, interactively when no name is given.
	ModeKill Mode = "kill"
)

// ErrTerminalUnavailable reports that interactive mode was requested
// without a usable terminal.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

// Test seams, swapped out the same way the exec helpers are.
var (
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	listInstalled = apps.Installed
	listRunning   = apps.Running
	openApp       = apps.Open
	quitApp       = apps.Terminate

	stdout io.Writer = os.Stdout
)

// announce prints a styled status line for the non-interactive modes.
func announce(verb *lipgloss.Style, label, target string) {
	fmt.Fprintf(stdout, "%s %s\n", verb.Render(label), styles.Target.Render(target))
}

// Config describes user-provided application options.
type Config struct {
	Mode       Mode
	Target     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run dispatches on the configured mode. Named open/kill targets run
// non-interactively; everything else starts the Bubble Tea program.
func Run(cfg Config) error {
	switch {
	case cfg.Mode == ModeOpen && cfg.Target != "":
		return openTarget(cfg.Target)
	case cfg.Mode == ModeKill && cfg.Target != "":
		return killTarget(cfg.Target)
	default:
		return runInteractive(cfg)
	}
}

// openTarget resolves name against the installed and running
// applications and launches the best match. Running applications are
// included so names outside the application directories still resolve.
func openTarget(name string) error {
	installed, err := listInstalled()
	if err != nil {
		return err
	}
	running, err := listRunning()
	if err != nil {
		return err
	}
	target, err := apps.ResolveTarget(name, mergeNames(installed, running))
	if err != nil {
		return err
	}
	events.App.Outcome("open", target)
	announce(styles.Opening, "Opening:", target)
	return openApp(target)
}

// mergeNames concatenates the slices, dropping duplicates while keeping
// first-seen order.
func mergeNames(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var merged []string
	for _, group := range groups {
		for _, name := range group {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, name)
		}
	}
	return merged
}

// killTarget resolves name against the running applications and quits
// the best match. A name that matches nothing running is refused with a
// message rather than an error.
func killTarget(name string) error {
	running, err := listRunning()
	if err != nil {
		return err
	}
	target, err := apps.ResolveTarget(name, running)
	if err != nil {
		events.App.Outcome("kill-refused", name)
		announce(styles.Quitting, "Application not running:", name)
		return nil
	}
	events.App.Outcome("kill", target)
	announce(styles.Quitting, "Quitting:", target)
	return quitApp(target)
}

func runInteractive(cfg Config) error {
	if !isTerminal() {
		return fmt.Errorf("%w: interactive mode needs a TTY on stdin and stdout", ErrTerminalUnavailable)
	}
	running, err := listRunning()
	if err != nil {
		return err
	}
	store := state.NewCandidateStore()
	store.SetRunning(picker.CandidatesFromNames(running))

	var model *ui.Model
	if cfg.Mode == ModeOpen {
		installed, err := listInstalled()
		if err != nil {
			return err
		}
		store.SetInstalled(picker.CandidatesFromNames(installed))
		model = ui.NewSearchModel(store, cfg.Width, cfg.Height, cfg.ShowFooter)
	} else {
		model = ui.NewModel(store, cfg.Width, cfg.Height, cfg.ShowFooter)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	finalModel, ok := final.(*ui.Model)
	if !ok {
		return nil
	}
	return executeOutcome(finalModel.Outcome(), cfg.Verbose)
}
