// Package dispatcher serializes step status mutations. Each step allows a
// single in-flight request; the UI disables a step's controls while its
// mutation is pending instead of firing duplicates.
package dispatcher

import (
	"context"
	"errors"
	"sync"

	"github.com/guptaRishi00/waflow/internal/client/api"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

// ErrBusy is returned when a mutation for the same step is still running.
var ErrBusy = errors.New("step mutation already in flight")

// StepAPI is the slice of the REST client the dispatcher needs.
type StepAPI interface {
	UpdateStepStatus(ctx context.Context, stepID, status string) (*api.Application, error)
}

type Dispatcher struct {
	api StepAPI

	mu       sync.Mutex
	inflight map[string]bool
}

func New(a StepAPI) *Dispatcher {
	return &Dispatcher{api: a, inflight: make(map[string]bool)}
}

// Actions returns the transitions legal from the given status. The UI
// renders exactly these as buttons; anything else never reaches the wire.
func (d *Dispatcher) Actions(status string) []workflow.Transition {
	normalized, ok := workflow.Normalize(status)
	if !ok {
		return nil
	}
	return workflow.Transitions(normalized)
}

// Busy reports whether a mutation for stepID is currently in flight.
func (d *Dispatcher) Busy(stepID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inflight[stepID]
}

// Dispatch sends one step transition and returns the refreshed application
// from the server. Concurrent calls for the same step fail fast with
// ErrBusy; distinct steps proceed independently.
func (d *Dispatcher) Dispatch(ctx context.Context, stepID, target string) (*api.Application, error) {
	d.mu.Lock()
	if d.inflight[stepID] {
		d.mu.Unlock()
		return nil, ErrBusy
	}
	d.inflight[stepID] = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.inflight, stepID)
		d.mu.Unlock()
	}()

	return d.api.UpdateStepStatus(ctx, stepID, target)
}
