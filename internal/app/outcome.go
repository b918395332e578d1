package app

import (
	"fmt"

	"github.com/appswitch/appswitch/internal/logging/events"
	"github.com/appswitch/appswitch/internal/picker"
)

// executeOutcome performs the action the interactive session settled
// on. Cancellation is not an error.
func executeOutcome(outcome picker.Outcome, verbose bool) error {
	switch outcome.Kind {
	case picker.OutcomeConfirmed:
		events.App.Outcome("open", outcome.Candidate.ID)
		if verbose {
			announce(styles.Opening, "Opening:", outcome.Candidate.Label)
		}
		return openApp(outcome.Candidate.ID)
	case picker.OutcomeAction:
		return executeAction(outcome, verbose)
	default:
		events.App.Outcome("cancelled", "")
		return nil
	}
}

func executeAction(outcome picker.Outcome, verbose bool) error {
	events.App.Outcome(outcome.Action.String(), outcome.Candidate.ID)
	switch outcome.Action {
	case picker.ActionTerminate:
		if verbose {
			announce(styles.Quitting, "Quitting:", outcome.Candidate.Label)
		}
		return quitApp(outcome.Candidate.ID)
	case picker.ActionOpen:
		if verbose {
			announce(styles.Opening, "Opening:", outcome.Candidate.Label)
		}
		return openApp(outcome.Candidate.ID)
	default:
		return fmt.Errorf("unknown action %q", outcome.Action)
	}
}
