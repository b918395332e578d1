package picker

// ActionKind identifies the operation requested against a candidate.
type ActionKind int

const (
	ActionOpen ActionKind = iota
	ActionTerminate
)

func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// OutcomeKind classifies how a session terminated.
type OutcomeKind int

const (
	OutcomeCancelled OutcomeKind = iota
	OutcomeConfirmed
	OutcomeAction
)

// Outcome is the single terminal result of an interactive session.
type Outcome struct {
	Kind      OutcomeKind
	Candidate Candidate
	Action    ActionKind
}

// Confirmed builds an outcome for a plain selection.
func Confirmed(c Candidate) Outcome {
	return Outcome{Kind: OutcomeConfirmed, Candidate: c}
}

// ActionRequested builds an outcome for an action-shortcut selection.
func ActionRequested(c Candidate, kind ActionKind) Outcome {
	return Outcome{Kind: OutcomeAction, Candidate: c, Action: kind}
}

// Cancelled builds the outcome for a user-driven cancellation.
func Cancelled() Outcome {
	return Outcome{Kind: OutcomeCancelled}
}
