package tour

// Mode is the tour's presentation mode.
type Mode int

const (
	NotStarted Mode = iota
	InProgress
)

func (m Mode) String() string {
	switch m {
	case NotStarted:
		return "NotStarted"
	case InProgress:
		return "InProgress"
	default:
		return "Unknown"
	}
}

// Action names a user-triggered entry point.
type Action int

const (
	ActionStart Action = iota
	ActionAdvance
	ActionRetreat
	ActionJump
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionAdvance:
		return "advance"
	case ActionRetreat:
		return "retreat"
	case ActionJump:
		return "jump"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Outcome is what an action ended up doing.
type Outcome int

const (
	OutcomeMoved      Outcome = iota // cursor or mode changed, tour continues
	OutcomeIgnored                   // action not valid in the current mode, or a no-op jump
	OutcomeCompleted                 // advanced past the last page; window closed
	OutcomeReset                     // retreated past the first page; back to welcome
	OutcomeTerminated                // skipped or quit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeCompleted:
		return "completed"
	case OutcomeReset:
		return "reset"
	case OutcomeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
