// Package views builds display models from API payloads. The step list
// derives each step's visual state and the actions to offer, so panels
// render from one precomputed structure.
package views

import (
	"github.com/guptaRishi00/waflow/internal/client/api"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

// StepView is one row of the application step list.
type StepView struct {
	ID      string
	Index   int
	Name    string
	Status  string
	State   workflow.StepState
	Actions []workflow.Transition
}

// ApplicationView is the display model for one application.
type ApplicationView struct {
	ID         string
	Status     string
	Steps      []StepView
	Completion float64
}

// BuildApplicationView derives states and actions for every step. Steps in
// the upcoming state get no actions regardless of their status; their
// controls stay locked until the predecessor is satisfied.
func BuildApplicationView(app *api.Application) ApplicationView {
	raw := make([]string, len(app.Steps))
	for i, s := range app.Steps {
		raw[i] = s.Status
	}

	states := workflow.States(raw)

	out := ApplicationView{
		ID:         app.ID,
		Status:     app.Status,
		Steps:      make([]StepView, 0, len(app.Steps)),
		Completion: workflow.CompletionRatio(raw),
	}

	for i, s := range app.Steps {
		view := StepView{
			ID:     s.ID,
			Index:  s.StepIndex,
			Name:   s.Name,
			Status: s.Status,
			State:  states[i],
		}
		if states[i] != workflow.StateUpcoming {
			if status, ok := workflow.Normalize(s.Status); ok {
				view.Actions = workflow.Transitions(status)
			}
		}
		out.Steps = append(out.Steps, view)
	}

	return out
}
