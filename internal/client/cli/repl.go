package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"unicode"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: (l)ist, refresh, edit <id>, set <field> <value>, password, show, submit, reset, delete <id>, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Set(ctx context.Context, field, value string) error
	Password(ctx context.Context) error
	Show(ctx context.Context) error
	Submit(ctx context.Context) error
	Reset(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	Answer(ctx context.Context, yes bool) error
	pendingConfirmation() bool
}

// runREPL starts a read–eval–print loop over scanner and dispatches each
// line to a. When a delete confirmation is pending, the next line is taken
// as the y/N answer instead of a command. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Commands:
//
//	help                    show available commands
//	l | list                print the record table
//	refresh                 refetch the collection
//	edit <id>               load a record into the form
//	set <field> <value...>  set a draft field (value may contain spaces)
//	password                enter the draft password without echo
//	show                    print the form
//	submit | save           create or update, depending on mode
//	reset | cancel          clear the form back to create mode
//	delete <id>             delete a record (asks for confirmation)
//	exit | quit             leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if a.pendingConfirmation() {
			printlnFn("confirm> ")
		} else {
			printlnFn(fmt.Sprintf("users %s> ", statusFn()))
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if a.pendingConfirmation() {
			_ = a.Answer(ctx, IsYes(line))
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "set":
			field, value := splitSet(line)
			if field == "" {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, field, value)

		case "password":
			_ = a.Password(ctx)

		case "show":
			_ = a.Show(ctx)

		case "submit", "save":
			_ = a.Submit(ctx)

		case "reset", "cancel":
			_ = a.Reset(ctx)

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// splitSet parses "set <field> <value>". The value is the rest of the line
// after the single separator following the field, kept byte for byte.
func splitSet(line string) (field, value string) {
	_, rest := cutSpace(strings.TrimLeftFunc(line, unicode.IsSpace))
	field, value = cutSpace(strings.TrimLeftFunc(rest, unicode.IsSpace))
	return field, value
}

func cutSpace(s string) (before, after string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
