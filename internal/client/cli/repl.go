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
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Pay(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	Dismiss(ctx context.Context) error
	History(ctx context.Context) error
	Profile(ctx context.Context) error
	Users(ctx context.Context) error
	Transactions(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Paygate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'; remaining tokens become the
// command's arguments. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - pay            — start a new payment
//	  - verify [ref]   — verify a payment by reference
//	  - dismiss        — drop the tracked pending payment
//	  - history        — list your payments
//	  - profile        — show account details
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
//	Admins additionally get:
//	  - users                  — list all accounts
//	  - transactions [status]  — list all payments, optionally by status
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pg> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn("Available commands: pay, verify [ref], dismiss, (h)istory, users, transactions [status], profile, logout, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: pay, verify [ref], dismiss, (h)istory, profile, logout, exit")
			default:
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "pay":
			_ = a.Pay(ctx)

		case "verify":
			_ = a.Verify(ctx, args)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "users":
			_ = a.Users(ctx)

		case "transactions":
			_ = a.Transactions(ctx, args)

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
