package install

// State is where an install unit is in its lifecycle
//
//	Pending -> Succeeded | FailedRetryable | Skipped
//	FailedRetryable -> Pending (rescheduled) | Failed (attempts exhausted)
type State int

const (
	StatePending State = iota
	StateSucceeded
	StateFailedRetryable
	StateSkipped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailedRetryable:
		return "failed-retryable"
	case StateSkipped:
		return "skipped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further attempt will be made
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateSkipped || s == StateFailed
}

// Outcome is the result of a single Execute call
type Outcome struct {
	State  State
	Name   string
	Dest   string
	Reason string
	Err    error
}

// Retryable reports whether the unit should be attempted again
func (o Outcome) Retryable() bool {
	return o.State == StateFailedRetryable
}

// ReasonEmptyName is the skip reason for URLs without a target name
const ReasonEmptyName = "empty name"
