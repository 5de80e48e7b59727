package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usermgmt/internal/client/client"
	"github.com/dmitrijs2005/usermgmt/internal/client/loop"
	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/common"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
)

// Console wires the cache, the form and the coordinator to one presenter.
type Console struct {
	presenter Presenter
	logger    logging.Logger

	Cache     *RecordCache
	Form      *Form
	Mutations *Coordinator
}

// NewConsole builds a console over api. It starts in create mode with an
// empty draft and the list marked as loading; call Start to fetch.
func NewConsole(api client.Client, l *loop.Loop, p Presenter, logger logging.Logger) *Console {
	c := &Console{presenter: p, logger: logger}

	c.Cache = newRecordCache(api, l, logger.With("component", "cache"), p.Alert, c.render)
	c.Form = newForm(c.render, p.FocusForm)
	c.Mutations = &Coordinator{
		api:     api,
		loop:    l,
		logger:  logger.With("component", "mutations"),
		alert:   p.Alert,
		confirm: p.ConfirmDelete,
		form:    c.Form,
		cache:   c.Cache,
	}
	return c
}

// Start performs the initial fetch.
func (c *Console) Start(ctx context.Context) {
	c.Cache.Refresh(ctx)
}

// View returns a snapshot of the current state.
func (c *Console) View() View {
	id, _ := c.Form.TargetID()
	return View{
		Records:  c.Cache.Records(),
		Loading:  c.Cache.Loading(),
		Mode:     c.Form.Mode(),
		TargetID: id,
		Draft:    c.Form.Draft(),
	}
}

func (c *Console) render() {
	c.presenter.Render(c.View())
}

func (c *Console) Refresh(ctx context.Context) {
	c.Cache.Refresh(ctx)
}

// BeginEdit enters edit mode for the cached record with the given id.
func (c *Console) BeginEdit(id string) error {
	r, ok := c.Cache.Find(id)
	if !ok {
		return fmt.Errorf("record %q: %w", id, common.ErrNotFound)
	}
	c.Form.BeginEdit(r)
	return nil
}

func (c *Console) Reset() {
	c.Form.Reset()
}

func (c *Console) UpdateField(f models.Field, value string) {
	c.Form.UpdateField(f, value)
}

func (c *Console) Submit(ctx context.Context) error {
	return c.Mutations.Submit(ctx)
}

func (c *Console) RequestRemove(ctx context.Context, id string) {
	c.Mutations.RequestRemove(ctx, id)
}

func (c *Console) ResolveRemove(ctx context.Context, id string, confirmed bool) {
	c.Mutations.ResolveRemove(ctx, id, confirmed)
}
