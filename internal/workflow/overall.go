package workflow

// ApplicationStatus is the overall status of an application, derived from
// its step statuses.
type ApplicationStatus string

const (
	ApplicationNew        ApplicationStatus = "New"
	ApplicationInProgress ApplicationStatus = "In Progress"
	ApplicationWaiting    ApplicationStatus = "Waiting for Agent Review"
	ApplicationCompleted  ApplicationStatus = "Completed"
)

// DeriveOverallStatus maps step statuses to the application's overall status:
// every step satisfied means Completed, any step submitted for review means
// Waiting for Agent Review, any step past Started means In Progress, and an
// untouched application stays New.
func DeriveOverallStatus(statuses []StepStatus) ApplicationStatus {
	if len(statuses) == 0 {
		return ApplicationNew
	}

	allSatisfied := true
	anySubmitted := false
	anyTouched := false

	for _, s := range statuses {
		if !Satisfied(s) {
			allSatisfied = false
		}
		if s == StatusSubmittedForReview {
			anySubmitted = true
		}
		if s != StatusStarted {
			anyTouched = true
		}
	}

	switch {
	case allSatisfied:
		return ApplicationCompleted
	case anySubmitted:
		return ApplicationWaiting
	case anyTouched:
		return ApplicationInProgress
	default:
		return ApplicationNew
	}
}
