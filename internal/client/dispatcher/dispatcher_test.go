package dispatcher

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guptaRishi00/waflow/internal/client/api"
)

type fakeStepAPI struct {
	mu      sync.Mutex
	calls   []string
	release chan struct{}
	err     error
}

func (f *fakeStepAPI) UpdateStepStatus(ctx context.Context, stepID, status string) (*api.Application, error) {
	f.mu.Lock()
	f.calls = append(f.calls, stepID+":"+status)
	f.mu.Unlock()

	if f.release != nil && stepID == "s1" {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return &api.Application{ID: "app-1"}, nil
}

func TestDispatch_ReturnsRefreshedApplication(t *testing.T) {
	f := &fakeStepAPI{}
	d := New(f)

	app, err := d.Dispatch(context.Background(), "s1", "Approved")
	require.NoError(t, err)
	assert.Equal(t, "app-1", app.ID)
	assert.Equal(t, []string{"s1:Approved"}, f.calls)
}

func TestDispatch_SecondCallForSameStepIsBusy(t *testing.T) {
	f := &fakeStepAPI{release: make(chan struct{})}
	d := New(f)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := d.Dispatch(context.Background(), "s1", "Approved")
		done <- err
	}()

	<-started
	// wait until the first dispatch has claimed the slot
	for !d.Busy("s1") {
		runtime.Gosched()
	}

	_, err := d.Dispatch(context.Background(), "s1", "Declined")
	assert.True(t, errors.Is(err, ErrBusy))

	close(f.release)
	require.NoError(t, <-done)
	assert.False(t, d.Busy("s1"))
}

func TestDispatch_DistinctStepsProceedIndependently(t *testing.T) {
	f := &fakeStepAPI{release: make(chan struct{})}
	d := New(f)

	go func() {
		_, _ = d.Dispatch(context.Background(), "s1", "Approved")
	}()
	for !d.Busy("s1") {
		runtime.Gosched()
	}

	// another step is not blocked by s1 being in flight
	_, err := d.Dispatch(context.Background(), "s2", "Skipped")
	require.NoError(t, err)

	close(f.release)
}

func TestDispatch_SlotFreedAfterError(t *testing.T) {
	f := &fakeStepAPI{err: errors.New("boom")}
	d := New(f)

	_, err := d.Dispatch(context.Background(), "s1", "Approved")
	require.Error(t, err)
	assert.False(t, d.Busy("s1"))

	f.err = nil
	_, err = d.Dispatch(context.Background(), "s1", "Approved")
	require.NoError(t, err)
}

func TestActions_MatchTransitionTable(t *testing.T) {
	d := New(&fakeStepAPI{})

	labels := func(status string) []string {
		var out []string
		for _, tr := range d.Actions(status) {
			out = append(out, tr.Label)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"Submit for Review", "Skip"}, labels("Started"))
	assert.ElementsMatch(t, []string{"Approve", "Decline"}, labels("Awaiting Response"))
	// legacy vocabulary resolves to the same actions
	assert.ElementsMatch(t, []string{"Submit for Review", "Skip"}, labels("not-started"))
	assert.Empty(t, labels("Approved"))
	assert.Empty(t, labels("banana"))
}
