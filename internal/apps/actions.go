package apps

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/appswitch/appswitch/internal/logging/events"
)

// runCommand is swapped out in tests.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// Open launches the named application via Launch Services.
func Open(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("application name required")
	}
	events.Action.Requested("open", trimmed)
	if err := runCommand("open", "-a", trimmed); err != nil {
		err = fmt.Errorf("open %s: %w", trimmed, err)
		events.Action.Error(err)
		return err
	}
	events.Action.Success(fmt.Sprintf("Opened %s", trimmed))
	return nil
}

// Terminate asks the named application to quit.
func Terminate(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("application name required")
	}
	events.Action.Requested("terminate", trimmed)
	script := fmt.Sprintf("tell application %q to quit", trimmed)
	if err := runCommand("osascript", "-e", script); err != nil {
		err = fmt.Errorf("quit %s: %w", trimmed, err)
		events.Action.Error(err)
		return err
	}
	events.Action.Success(fmt.Sprintf("Quit %s", trimmed))
	return nil
}

// ResolveTarget picks the application a partial name refers to. An exact
// match (ignoring case) wins; otherwise the closest fuzzy match does.
func ResolveTarget(name string, candidates []string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("application name required")
	}
	for _, candidate := range candidates {
		if strings.EqualFold(candidate, trimmed) {
			return candidate, nil
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, candidates)
	if len(ranks) == 0 {
		return "", fmt.Errorf("no application matches %q", trimmed)
	}
	sort.Sort(ranks)
	return ranks[0].Target, nil
}
