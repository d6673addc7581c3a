package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Overlays(ctx context.Context, args []string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF, on "exit"/"quit" or when ctx is done.
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate against the directory
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - (l)ist [page]  show a page of users
//	  - next | prev    move one page
//	  - page N         jump to page N
//	  - edit ID        edit first name, last name and email of a user
//	  - delete ID      delete a user
//	  - overlays       show local edits; "overlays clear" forgets them
//	  - logout         forget the session token
//	  - exit | quit    leave the program
//
// Handler errors are reported by the handlers themselves; the loop keeps
// running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("userdesk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist [page], next, prev, page N, edit ID, delete ID, overlays [clear], logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "next", "n":
			_ = a.Next(ctx)

		case "prev", "p":
			_ = a.Prev(ctx)

		case "page":
			_ = a.Page(ctx, args)

		case "edit", "e":
			_ = a.Edit(ctx, args)

		case "delete", "rm":
			_ = a.Delete(ctx, args)

		case "overlays":
			_ = a.Overlays(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
