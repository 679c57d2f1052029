package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) Notifications(ctx context.Context) error {
	if err := a.poller.Poll(ctx); err != nil {
		log.Println(err.Error())
		return err
	}

	for _, n := range a.poller.Notifications() {
		marker := " "
		if n.Status == "Unread" {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("[%s] %s  %s: %s", marker, n.ID, n.Title, n.Message))
	}
	printlnFn(fmt.Sprintf("%d unread", a.poller.Unread()))
	return nil
}

func (a *App) ReadNotification(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Notification ID", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.poller.MarkRead(ctx, id); err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("%d unread", a.poller.Unread()))
	return nil
}

func (a *App) ClearNotifications(ctx context.Context) error {
	if err := a.poller.ClearAll(ctx); err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("All notifications marked read")
	return nil
}
