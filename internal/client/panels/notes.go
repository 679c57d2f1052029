package panels

import (
	"sort"

	"github.com/guptaRishi00/waflow/internal/client/api"
)

// NoteThread orders an application's notes oldest first and, when stepID is
// non-empty, keeps only the notes linked to that step.
func NoteThread(notes []api.Note, stepID string) []api.Note {
	var out []api.Note
	for _, n := range notes {
		if stepID != "" && n.StepID != stepID {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
