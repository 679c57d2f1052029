package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if user := a.session.Current().User; user.ID != "" {
		return fmt.Sprintf("(%s %s)", user.Email, user.Role)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to Waflow CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}
	if a.isLoggedIn() {
		_ = a.Dashboard(ctx)
	}

	pollCtx, cancelPoll := context.WithCancel(ctx)
	defer cancelPoll()

	go func() {
		a.poller.Run(pollCtx, a.config.NotificationPollInterval)
	}()

	runREPL(ctx, a, a.getStatus, scanner)
}
