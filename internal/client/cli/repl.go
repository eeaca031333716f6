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
	hasToken() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	StartSession(ctx context.Context, args []string) error
	Rotate(ctx context.Context, args []string) error
	EndSession(ctx context.Context, args []string) error
	Active(ctx context.Context, args []string) error
	Redeem(ctx context.Context, args []string) error
	Attendance(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the attendance CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as its arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Anyone:
//	  - help                          show available commands
//	  - redeem <scan-url> <roll>      check in
//	  - ping                          probe the server
//	  - login                         enter a teacher access token
//	  - exit | quit                   leave the program
//
//	With an access token:
//	  - start <class>                 start a session
//	  - rotate <session>              rotate the sub-token now
//	  - end <session>                 end a session
//	  - active <class>                show the active session
//	  - attendance <class> [day|month]
//	  - watch session <id> | owner    follow live events
//	  - logout
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qa %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.hasToken() {
				printlnFn("Available commands: start, rotate, end, active, attendance, watch, redeem, ping, logout, exit")
			} else {
				printlnFn("Available commands: redeem, ping, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "start":
			_ = a.StartSession(ctx, args)

		case "rotate":
			_ = a.Rotate(ctx, args)

		case "end":
			_ = a.EndSession(ctx, args)

		case "active":
			_ = a.Active(ctx, args)

		case "redeem":
			_ = a.Redeem(ctx, args)

		case "attendance", "att":
			_ = a.Attendance(ctx, args)

		case "watch":
			_ = a.Watch(ctx, args)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
