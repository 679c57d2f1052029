package workflow

// StepState is the display state of a step within an ordered list.
type StepState string

const (
	StateCompleted StepState = "completed"
	StateActive    StepState = "active"
	StateUpcoming  StepState = "upcoming"
)

// States computes the display state for each status in an ordered step list.
//
//   - completed: the step is Approved.
//   - upcoming:  a predecessor is not yet satisfied (Approved or Skipped).
//   - active:    otherwise. Index 0 is never upcoming.
//
// Raw statuses in the legacy vocabulary are normalized first; an
// unrecognizable status is treated as Started.
func States(statuses []string) []StepState {
	out := make([]StepState, len(statuses))
	for i, raw := range statuses {
		s, ok := Normalize(raw)
		if !ok {
			s = StatusStarted
		}
		switch {
		case s == StatusApproved:
			out[i] = StateCompleted
		case i > 0 && !predecessorSatisfied(statuses[i-1]):
			out[i] = StateUpcoming
		default:
			out[i] = StateActive
		}
	}
	return out
}

func predecessorSatisfied(raw string) bool {
	s, ok := Normalize(raw)
	return ok && Satisfied(s)
}

// CompletionRatio returns the fraction of steps that are Approved or Skipped.
// An empty list yields 0.
func CompletionRatio(statuses []string) float64 {
	if len(statuses) == 0 {
		return 0
	}
	done := 0
	for _, raw := range statuses {
		if s, ok := Normalize(raw); ok && Satisfied(s) {
			done++
		}
	}
	return float64(done) / float64(len(statuses))
}

// Actionable reports whether documents and notes attached to a step should
// be open for interaction: only active and completed steps are actionable.
func Actionable(state StepState) bool {
	return state == StateActive || state == StateCompleted
}
