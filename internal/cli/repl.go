package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context)
	Login(ctx context.Context)
	Logout(ctx context.Context)
	ListStories(ctx context.Context)
	AddStory(ctx context.Context)
	Favorite(ctx context.Context, arg string)
	Unfavorite(ctx context.Context, arg string)
	ShowFavorites(ctx context.Context)
	ShowOwn(ctx context.Context)
}

// runREPL starts a simple read–eval–print loop for the hackline CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handlers report their own errors; the loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hl %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: stories, add, fav <n>, unfav <n>, favorites, mine, logout, exit")
			} else {
				printlnFn("Available commands: stories, signup, login, exit")
			}

		case "signup":
			a.Signup(ctx)

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "stories", "list", "l":
			a.ListStories(ctx)

		case "add":
			a.AddStory(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <story number>")
				continue
			}
			a.Favorite(ctx, args[0])

		case "unfav":
			if len(args) == 0 {
				printlnFn("Usage: unfav <story number>")
				continue
			}
			a.Unfavorite(ctx, args[0])

		case "favorites":
			a.ShowFavorites(ctx)

		case "mine":
			a.ShowOwn(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
