package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/client/services"
)

const (
	loadingText = "Loading records..."
	emptyText   = "No users found."
	confirmText = "Are you sure you want to delete this user?"
)

// terminal is the services.Presenter for a text terminal. Presenter methods
// run on the console loop; the pending confirmation is also read by the REPL
// goroutine, hence the mutex.
type terminal struct {
	mu      sync.Mutex
	w       io.Writer
	last    services.View
	seen    bool
	pending string
}

func newTerminal(w io.Writer) *terminal {
	return &terminal{w: w}
}

// Render reprints the record table whenever the list part of the state
// changed. Draft edits are shown on demand only.
func (t *terminal) Render(v services.View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	listChanged := !t.seen || v.Loading != t.last.Loading || !slices.Equal(v.Records, t.last.Records)
	t.last = v
	t.seen = true
	if listChanged {
		t.writeRecords(v)
	}
}

func (t *terminal) Alert(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "! %s\n", msg)
}

func (t *terminal) FocusForm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeForm(t.last)
}

func (t *terminal) ConfirmDelete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = id
	fmt.Fprintf(t.w, "%s (%s) [y/N]\n", confirmText, id)
}

func (t *terminal) hasPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != ""
}

// takeConfirmation returns and clears the id awaiting an answer.
func (t *terminal) takeConfirmation() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.pending
	t.pending = ""
	return id, id != ""
}

func (t *terminal) printRecords(v services.View) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeRecords(v)
}

func (t *terminal) printForm(v services.View) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeForm(v)
}

func (t *terminal) writeRecords(v services.View) {
	switch {
	case v.Loading:
		fmt.Fprintln(t.w, loadingText)
		return
	case len(v.Records) == 0:
		fmt.Fprintln(t.w, emptyText)
		return
	}

	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER NAME\tUSER MAIL\tSTATUS")
	for _, r := range v.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.FullName(), r.Email, r.DisplayStatus())
	}
	_ = tw.Flush()
}

func (t *terminal) writeForm(v services.View) {
	fmt.Fprintf(t.w, "== %s ==\n", v.Mode.FormTitle())
	if v.Mode == models.ModeEdit {
		fmt.Fprintf(t.w, "editing %s\n", v.TargetID)
	}

	tw := tabwriter.NewWriter(t.w, 0, 0, 2, ' ', 0)
	for _, f := range v.Mode.VisibleFields() {
		value := v.Draft.Get(f)
		if f == models.FieldPassword && value != "" {
			value = strings.Repeat("*", 8)
		}
		fmt.Fprintf(tw, "  %s (%s)\t%s\n", v.Mode.FieldLabel(f), f, value)
	}
	_ = tw.Flush()

	actions := "submit: " + v.Mode.SubmitLabel()
	if v.CanReset() {
		actions += " | reset"
	}
	fmt.Fprintf(t.w, "[%s]\n", actions)
}
