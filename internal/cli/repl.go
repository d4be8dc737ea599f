package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const loginHint = "Please log in first. Type 'help' for available commands."

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Favorite(ctx context.Context, args []string) error
	Share(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Types(ctx context.Context) error
	Seed(ctx context.Context, args []string) error
	ProfileImage(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the recipe shell.
//
// It reads a line from the provided reader, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// The reader is shared with the prompt helpers so that command
// handlers which prompt for further input consume the same buffer;
// this keeps piped input working, not just a TTY.
//
// Any errors returned by command handlers are printed and the loop
// continues; a failed command never terminates the shell.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("recipebox> %s > ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, show, add, delete, fav, share, search, filter, types, seed, profile-image, logout, delete-account, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
		case "exit", "quit":
			return
		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
			} else {
				err = a.Register(ctx)
			}
		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
			} else {
				err = a.Login(ctx)
			}
		case "logout":
			if a.isLoggedIn() {
				err = a.Logout(ctx)
			} else {
				printlnFn(loginHint)
			}
		case "delete-account":
			if a.isLoggedIn() {
				err = a.DeleteAccount(ctx)
			} else {
				printlnFn(loginHint)
			}
		case "list", "l":
			if a.isLoggedIn() {
				err = a.List(ctx)
			} else {
				printlnFn(loginHint)
			}
		case "show":
			if a.isLoggedIn() {
				err = a.Show(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		case "add":
			if a.isLoggedIn() {
				err = a.Add(ctx)
			} else {
				printlnFn(loginHint)
			}
		case "delete":
			if a.isLoggedIn() {
				err = a.Delete(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		case "fav":
			if a.isLoggedIn() {
				err = a.Favorite(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		case "share":
			if a.isLoggedIn() {
				err = a.Share(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		case "search":
			if a.isLoggedIn() {
				err = a.Search(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		case "filter":
			if a.isLoggedIn() {
				err = a.Filter(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		case "types":
			if a.isLoggedIn() {
				err = a.Types(ctx)
			} else {
				printlnFn(loginHint)
			}
		case "seed":
			if a.isLoggedIn() {
				err = a.Seed(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		case "profile-image":
			if a.isLoggedIn() {
				err = a.ProfileImage(ctx, args)
			} else {
				printlnFn(loginHint)
			}
		default:
			printlnFn("Unknown command. Type 'help' for a list of commands.")
		}

		if err != nil {
			printlnFn(fmt.Sprintf("Error: %v", err))
		}
		if readErr != nil {
			return
		}
	}
}
