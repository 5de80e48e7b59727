// Package cli is the terminal presentation layer of the user console.
//
// It wires configuration, the directory client, the console loop and the
// console core, then runs an interactive REPL. Commands are translated into
// console events posted to the loop; the loop pushes state back through a
// terminal Presenter that prints the record table, notices and prompts.
//
// Key features:
//   - List / Refresh the user records
//   - Edit a record, set draft fields, enter a password without echo
//   - Submit (create or update depending on mode), Reset the form
//   - Delete with an explicit y/N confirmation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
