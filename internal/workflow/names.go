package workflow

import "strings"

// CanonicalStepNames is the ordered step template applied to every new
// application. Step identity is by ID once created; these names seed the
// template and anchor ResolveStepName for callers that still pass titles.
var CanonicalStepNames = []string{
	"Application Submission",
	"KYC & Background Check",
	"Trade Name Reservation",
	"Initial Approval",
	"Document Verification",
	"Payment Confirmation",
	"License Issuance",
	"Visa Processing",
}

// WarnFunc receives a message when a step title cannot be resolved to a
// canonical name. Wire it to a logger; the default is a no-op.
type WarnFunc func(msg string, args ...any)

// ResolveStepName maps a display title to the canonical backend step name.
// Resolution order: exact match, case-insensitive match, then a
// case-insensitive substring match in either direction. If nothing matches,
// the title is returned unchanged and warn (if non-nil) is invoked.
func ResolveStepName(title string, warn WarnFunc) string {
	for _, name := range CanonicalStepNames {
		if title == name {
			return name
		}
	}

	lower := strings.ToLower(strings.TrimSpace(title))
	for _, name := range CanonicalStepNames {
		if lower == strings.ToLower(name) {
			return name
		}
	}

	if lower != "" {
		for _, name := range CanonicalStepNames {
			nl := strings.ToLower(name)
			if strings.Contains(nl, lower) || strings.Contains(lower, nl) {
				return name
			}
		}
	}

	if warn != nil {
		warn("no canonical step name for title", "title", title)
	}
	return title
}
