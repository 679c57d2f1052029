package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/guptaRishi00/waflow/internal/client/api"
	"github.com/guptaRishi00/waflow/internal/client/views"
	"github.com/guptaRishi00/waflow/internal/workflow"
)

func (a *App) List(ctx context.Context) error {
	apps, err := a.api.Applications(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, app := range apps {
		printlnFn(fmt.Sprintf("%s  %-12s %-8s customer=%s", app.ID, app.Status, app.LegalType, app.CustomerID))
	}
	return nil
}

// Show prints one application's step list with derived states, actions
// and completion.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Application ID", os.Stdout)
	if err != nil {
		return err
	}

	app, err := a.api.Application(ctx, id)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	view := views.BuildApplicationView(app)
	printlnFn(fmt.Sprintf("%s  %s  %.0f%% complete", view.ID, view.Status, view.Completion*100))

	for _, step := range view.Steps {
		marker := " "
		switch step.State {
		case workflow.StateCompleted:
			marker = "x"
		case workflow.StateActive:
			marker = ">"
		}
		line := fmt.Sprintf("[%s] %d. %-28s %s", marker, step.Index+1, step.Name, step.Status)
		if a.dispatcher.Busy(step.ID) {
			line += "  (updating...)"
		}
		for _, action := range step.Actions {
			line += fmt.Sprintf("  [%s]", action.Label)
		}
		printlnFn(line)
	}

	for _, note := range app.Notes {
		printlnFn(fmt.Sprintf("note %s (%s): %s", note.CreatedAt.Format("2006-01-02"), note.AuthorRole, note.Message))
	}
	return nil
}

// Advance dispatches one step transition and prints the refreshed list.
// The step may be referenced by id or by title.
func (a *App) Advance(ctx context.Context) error {
	appID, err := GetSimpleText(a.reader, "Application ID", os.Stdout)
	if err != nil {
		return err
	}
	stepRef, err := GetSimpleText(a.reader, "Step (id or name)", os.Stdout)
	if err != nil {
		return err
	}
	target, err := GetSimpleText(a.reader, "Target status", os.Stdout)
	if err != nil {
		return err
	}

	app, err := a.api.Application(ctx, appID)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	stepID, err := findStep(app, stepRef)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	refreshed, err := a.dispatcher.Dispatch(ctx, stepID, target)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	view := views.BuildApplicationView(refreshed)
	printlnFn(fmt.Sprintf("%s is now %s (%.0f%% complete)", view.ID, view.Status, view.Completion*100))
	return nil
}

// findStep resolves a user-typed step reference to a step id. An exact id
// match wins; anything else is treated as a title and resolved to the
// canonical step name first.
func findStep(app *api.Application, ref string) (string, error) {
	for _, s := range app.Steps {
		if s.ID == ref {
			return s.ID, nil
		}
	}

	name := workflow.ResolveStepName(ref, log.Printf)
	for _, s := range app.Steps {
		if s.Name == name {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("no step %q in application %s", ref, app.ID)
}

func (a *App) AddNote(ctx context.Context) error {
	appID, err := GetSimpleText(a.reader, "Application ID", os.Stdout)
	if err != nil {
		return err
	}
	stepID, err := GetSimpleText(a.reader, "Step ID (empty for whole application)", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.api.AddNote(ctx, appID, stepID, message)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Note added:", note.ID)
	return nil
}

// NewApplication opens a registration case for a customer. Agents only;
// the server rejects everyone else.
func (a *App) NewApplication(ctx context.Context) error {
	customerID, err := GetSimpleText(a.reader, "Customer ID", os.Stdout)
	if err != nil {
		return err
	}
	jurisdiction, err := GetSimpleText(a.reader, "Jurisdiction", os.Stdout)
	if err != nil {
		return err
	}
	legalType, err := GetSimpleText(a.reader, "Legal type", os.Stdout)
	if err != nil {
		return err
	}

	app, err := a.api.CreateApplication(ctx, customerID, jurisdiction, legalType)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Application created:", app.ID)
	return nil
}
