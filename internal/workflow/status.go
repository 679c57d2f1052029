// Package workflow owns the registration workflow vocabulary: step statuses,
// the transition table, step name resolution and the per-step display state
// derived from an ordered step list. Both the server (which enforces
// transitions) and the client (which renders them) use this package, so the
// two can never disagree on what a legal transition is.
package workflow

// StepStatus is the canonical status of a workflow step as persisted by the
// server. Older clients used a second, lowercase vocabulary
// (not-started/awaiting/submitted/approved/declined); Normalize folds that
// vocabulary into this one.
type StepStatus string

const (
	StatusStarted            StepStatus = "Started"
	StatusSubmittedForReview StepStatus = "Submitted for Review"
	StatusAwaitingResponse   StepStatus = "Awaiting Response"
	StatusApproved           StepStatus = "Approved"
	StatusDeclined           StepStatus = "Declined"
	StatusSkipped            StepStatus = "Skipped"
)

// legacyAliases maps the lowercase client vocabulary onto canonical statuses.
var legacyAliases = map[string]StepStatus{
	"not-started": StatusStarted,
	"awaiting":    StatusAwaitingResponse,
	"submitted":   StatusSubmittedForReview,
	"approved":    StatusApproved,
	"declined":    StatusDeclined,
}

// Normalize resolves a raw status string, in either vocabulary, to a
// canonical StepStatus. The second return value reports whether the input
// was recognized.
func Normalize(raw string) (StepStatus, bool) {
	switch StepStatus(raw) {
	case StatusStarted, StatusSubmittedForReview, StatusAwaitingResponse,
		StatusApproved, StatusDeclined, StatusSkipped:
		return StepStatus(raw), true
	}
	if s, ok := legacyAliases[raw]; ok {
		return s, true
	}
	return "", false
}

// Transition is one permissible step action: the label shown to the user and
// the status the step moves to when the action is taken.
type Transition struct {
	Label  string
	Target StepStatus
}

// transitions is the exhaustive table of permissible step transitions.
// Approved, Declined and Skipped are terminal.
var transitions = map[StepStatus][]Transition{
	StatusStarted: {
		{Label: "Submit for Review", Target: StatusSubmittedForReview},
		{Label: "Skip", Target: StatusSkipped},
	},
	StatusSubmittedForReview: {
		{Label: "Mark Awaiting Response", Target: StatusAwaitingResponse},
		{Label: "Approve", Target: StatusApproved},
		{Label: "Decline", Target: StatusDeclined},
	},
	StatusAwaitingResponse: {
		{Label: "Approve", Target: StatusApproved},
		{Label: "Decline", Target: StatusDeclined},
	},
}

// Transitions returns the permissible transitions out of the given status.
// Terminal or unknown statuses yield an empty slice.
func Transitions(from StepStatus) []Transition {
	ts := transitions[from]
	out := make([]Transition, len(ts))
	copy(out, ts)
	return out
}

// CanTransition reports whether moving from one status to another is legal
// per the transition table.
func CanTransition(from, to StepStatus) bool {
	for _, t := range transitions[from] {
		if t.Target == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leads out of the status.
func IsTerminal(s StepStatus) bool {
	return len(transitions[s]) == 0
}

// Satisfied reports whether a step counts as done for ordering purposes:
// a successor becomes actionable once its predecessor is Approved or Skipped.
func Satisfied(s StepStatus) bool {
	return s == StatusApproved || s == StatusSkipped
}
