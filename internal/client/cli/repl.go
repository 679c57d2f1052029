package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Advance(ctx context.Context) error
	AddNote(ctx context.Context) error
	NewApplication(ctx context.Context) error
	UploadDocument(ctx context.Context) error
	ListDocuments(ctx context.Context) error
	ReviewDocument(ctx context.Context) error
	DownloadDocument(ctx context.Context) error
	Notifications(ctx context.Context) error
	ReadNotification(ctx context.Context) error
	ClearNotifications(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Errors returned by command handlers are ignored here;
// handlers log their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("waflow %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, home, (l)ist, show, advance, note, newapp, upload, docs, review, download, (n)otifications, read, clearall, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "home", "dashboard":
			_ = a.Dashboard(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "advance":
			_ = a.Advance(ctx)

		case "note":
			_ = a.AddNote(ctx)

		case "newapp":
			_ = a.NewApplication(ctx)

		case "upload":
			_ = a.UploadDocument(ctx)

		case "docs":
			_ = a.ListDocuments(ctx)

		case "review":
			_ = a.ReviewDocument(ctx)

		case "download":
			_ = a.DownloadDocument(ctx)

		case "n", "notifications":
			_ = a.Notifications(ctx)

		case "read":
			_ = a.ReadNotification(ctx)

		case "clearall":
			_ = a.ClearNotifications(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
