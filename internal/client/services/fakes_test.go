package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/usermgmt/internal/client/loop"
	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
	"github.com/stretchr/testify/require"
)

type apiCall struct {
	Op     string
	ID     string
	Create models.CreatePayload
	Update models.UpdatePayload
}

// fakeAPI records every call. List replies are taken from listReplies by call
// index (the last one repeats); a gate for an index blocks that call until closed.
type fakeAPI struct {
	mu sync.Mutex

	calls []apiCall

	listReplies [][]models.UserRecord
	listErrs    map[int]error
	listGates   map[int]chan struct{}
	listN       int

	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeAPI) List(ctx context.Context) ([]models.UserRecord, error) {
	f.mu.Lock()
	n := f.listN
	f.listN++
	f.calls = append(f.calls, apiCall{Op: "list"})
	var reply []models.UserRecord
	if len(f.listReplies) > 0 {
		reply = f.listReplies[min(n, len(f.listReplies)-1)]
	}
	err := f.listErrs[n]
	gate := f.listGates[n]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (f *fakeAPI) Create(ctx context.Context, p models.CreatePayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, apiCall{Op: "create", Create: p})
	return f.createErr
}

func (f *fakeAPI) Update(ctx context.Context, id string, p models.UpdatePayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, apiCall{Op: "update", ID: id, Update: p})
	return f.updateErr
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, apiCall{Op: "delete", ID: id})
	return f.deleteErr
}

func (f *fakeAPI) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.Op)
	}
	return out
}

func (f *fakeAPI) lastCall() apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func (f *fakeAPI) callsOf(op string) []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []apiCall
	for _, c := range f.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// fakePresenter keeps everything the core pushed at it.
type fakePresenter struct {
	views    []View
	alerts   []string
	focused  int
	confirms []string
}

func (p *fakePresenter) Render(v View)           { p.views = append(p.views, v) }
func (p *fakePresenter) Alert(msg string)        { p.alerts = append(p.alerts, msg) }
func (p *fakePresenter) FocusForm()              { p.focused++ }
func (p *fakePresenter) ConfirmDelete(id string) { p.confirms = append(p.confirms, id) }

func (p *fakePresenter) last() View {
	return p.views[len(p.views)-1]
}

type harness struct {
	api  *fakeAPI
	loop *loop.Loop
	ui   *fakePresenter
	c    *Console
}

func newHarness(api *fakeAPI) *harness {
	l := loop.New()
	ui := &fakePresenter{}
	return &harness{api: api, loop: l, ui: ui, c: NewConsole(api, l, ui, logging.Nop())}
}

func (h *harness) settle(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.loop.RunUntilIdle(ctx))
}

// started returns a harness whose initial fetch has completed.
func started(t *testing.T, api *fakeAPI) *harness {
	t.Helper()
	h := newHarness(api)
	h.c.Start(context.Background())
	h.settle(t)
	return h
}

var alice = models.UserRecord{ID: "1", Username: "alice", Email: "a@x.com", Firstname: "Alice", Lastname: "A"}
var bob = models.UserRecord{ID: "2", Username: "bob", Email: "b@x.com", Firstname: "Bob", Lastname: "B", Status: "BLOCKED"}
