package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/usermgmt/internal/client/client"
	"github.com/dmitrijs2005/usermgmt/internal/client/config"
	"github.com/dmitrijs2005/usermgmt/internal/client/loop"
	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/client/services"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	loop    *loop.Loop
	console *services.Console
	term    *terminal
	in      io.Reader
	out     io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, c.LogFormat, c.LogLevel)
	if err != nil {
		return nil, err
	}

	api, err := client.NewHTTPClient(c.Endpoint, c.RequestTimeout, logger.With("component", "directory"))
	if err != nil {
		logger.Error(context.Background(), "error initializing directory client", "error", err)
		return nil, err
	}

	return newApp(c, api, logger, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, logger logging.Logger, in io.Reader, out io.Writer) *App {
	l := loop.New()
	t := newTerminal(out)
	return &App{
		config:  c,
		logger:  logger,
		loop:    l,
		console: services.NewConsole(api, l, t, logger),
		term:    t,
		in:      in,
		out:     out,
	}
}

// Run starts the console loop, performs the initial fetch and blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() { _ = a.loop.Run(ctx) }()

	a.logger.Info(ctx, "console started", "endpoint", a.config.Endpoint)
	printlnFn("User Management Console (type 'help' for commands)")
	a.loop.Post(func() { a.console.Start(ctx) })

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.in))
}

// dispatch runs fn on the console loop and waits until it has run. Calls
// started by fn keep running in the background.
func (a *App) dispatch(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	a.loop.Post(func() {
		defer close(done)
		fn()
	})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *App) view(ctx context.Context) (services.View, error) {
	var v services.View
	err := a.dispatch(ctx, func() { v = a.console.View() })
	return v, err
}

func (a *App) getStatus() string {
	v, err := a.view(context.Background())
	if err != nil {
		return ""
	}
	s := string(v.Mode)
	if v.Mode == models.ModeEdit {
		s += " " + v.TargetID
	}
	if v.Loading {
		s += ", loading"
	}
	return "(" + s + ")"
}

// List prints the cached record table.
func (a *App) List(ctx context.Context) error {
	return a.dispatch(ctx, func() { a.term.printRecords(a.console.View()) })
}

// Refresh refetches the collection.
func (a *App) Refresh(ctx context.Context) error {
	return a.dispatch(ctx, func() { a.console.Refresh(ctx) })
}

// Edit loads the cached record with id into the form.
func (a *App) Edit(ctx context.Context, id string) error {
	var err error
	if derr := a.dispatch(ctx, func() {
		if err = a.console.BeginEdit(id); err != nil {
			a.term.Alert(err.Error())
		}
	}); derr != nil {
		return derr
	}
	return err
}

// Set assigns one draft field by name.
func (a *App) Set(ctx context.Context, field, value string) error {
	f, err := models.ParseField(field)
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	return a.dispatch(ctx, func() { a.console.UpdateField(f, value) })
}

// Password reads the draft password from the terminal without echo.
func (a *App) Password(ctx context.Context) error {
	v, err := a.view(ctx)
	if err != nil {
		return err
	}

	pw, err := GetPassword(a.out, v.Mode.FieldLabel(models.FieldPassword))
	if err != nil {
		a.logger.Warn(ctx, "password prompt", "error", err)
		a.term.Alert("cannot read password: " + err.Error() + " (use: set password <value>)")
		return err
	}
	value := string(pw)
	wipe(pw)

	return a.dispatch(ctx, func() { a.console.UpdateField(models.FieldPassword, value) })
}

// Show prints the form.
func (a *App) Show(ctx context.Context) error {
	return a.dispatch(ctx, func() { a.term.printForm(a.console.View()) })
}

// Submit sends the draft. Validation problems are reported by the console.
func (a *App) Submit(ctx context.Context) error {
	var err error
	if derr := a.dispatch(ctx, func() { err = a.console.Submit(ctx) }); derr != nil {
		return derr
	}
	return err
}

// Reset clears the form back to create mode and shows it.
func (a *App) Reset(ctx context.Context) error {
	return a.dispatch(ctx, func() {
		a.console.Reset()
		a.term.printForm(a.console.View())
	})
}

// Delete asks for confirmation before removing id.
func (a *App) Delete(ctx context.Context, id string) error {
	return a.dispatch(ctx, func() { a.console.RequestRemove(ctx, id) })
}

// Answer resolves the pending delete confirmation.
func (a *App) Answer(ctx context.Context, yes bool) error {
	id, ok := a.term.takeConfirmation()
	if !ok {
		return nil
	}
	return a.dispatch(ctx, func() { a.console.ResolveRemove(ctx, id, yes) })
}

func (a *App) pendingConfirmation() bool {
	return a.term.hasPending()
}
