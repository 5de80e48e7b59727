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

// Coordinator turns a submit or a confirmed delete into the matching remote
// call and resynchronizes the cache once the call succeeds.
type Coordinator struct {
	api     client.Client
	loop    *loop.Loop
	logger  logging.Logger
	alert   func(string)
	confirm func(string)

	form  *Form
	cache *RecordCache

	pendingRemove string
}

// Submit sends the draft as a create or an update depending on the form
// mode. A draft missing a required field is refused with a notice and no
// call; the returned error wraps common.ErrValidation in that case.
//
// On success the form is reset and the cache refreshed, in that order. On
// failure draft and mode are left as they are so the operator can retry.
// The success path resets the form even if the operator began another edit
// while the call was in flight.
func (m *Coordinator) Submit(ctx context.Context) error {
	draft := m.form.Draft()
	callCtx := context.WithoutCancel(ctx)

	if id, editing := m.form.TargetID(); editing {
		p := draft.UpdatePayload()
		if err := models.ValidateRequired(p); err != nil {
			return m.refuse(ctx, err)
		}
		m.loop.Go(func() func() {
			err := m.api.Update(callCtx, id, p)
			return func() { m.submitted(ctx, models.ModeEdit, id, err) }
		})
		return nil
	}

	p := draft.CreatePayload()
	if err := models.ValidateRequired(p); err != nil {
		return m.refuse(ctx, err)
	}
	m.loop.Go(func() func() {
		err := m.api.Create(callCtx, p)
		return func() { m.submitted(ctx, models.ModeCreate, "", err) }
	})
	return nil
}

func (m *Coordinator) refuse(ctx context.Context, err error) error {
	m.logger.Info(ctx, "submit refused", "reason", err)
	m.alert(err.Error())
	return fmt.Errorf("%w: %w", common.ErrValidation, err)
}

func (m *Coordinator) submitted(ctx context.Context, mode models.Mode, id string, err error) {
	if err != nil {
		m.logger.Error(ctx, "submit failed", "mode", mode, "id", id, "error", err)
		m.alert(NoticeFor(err, NoticeSubmitFailed))
		return
	}
	m.logger.Info(ctx, "submit succeeded", "mode", mode, "id", id)
	m.form.Reset()
	m.cache.Refresh(ctx)
}

// RequestRemove starts the two-step delete protocol: it records id as the
// pending removal and asks the presenter for confirmation. Nothing is sent
// until ResolveRemove confirms. A newer request replaces an older one.
func (m *Coordinator) RequestRemove(ctx context.Context, id string) {
	if id == "" {
		return
	}
	m.pendingRemove = id
	m.confirm(id)
}

// ResolveRemove completes the protocol started by RequestRemove. Answers for
// an id that is not pending are ignored. Declining is silent.
func (m *Coordinator) ResolveRemove(ctx context.Context, id string, confirmed bool) {
	if id == "" || id != m.pendingRemove {
		m.logger.Debug(ctx, "ignoring delete answer", "id", id, "pending", m.pendingRemove)
		return
	}
	m.pendingRemove = ""
	if !confirmed {
		return
	}

	callCtx := context.WithoutCancel(ctx)
	m.loop.Go(func() func() {
		err := m.api.Delete(callCtx, id)
		return func() { m.removed(ctx, id, err) }
	})
}

func (m *Coordinator) removed(ctx context.Context, id string, err error) {
	if err != nil {
		m.logger.Error(ctx, "delete failed", "id", id, "error", err)
		m.alert(NoticeFor(err, NoticeDeleteFailed))
		return
	}
	m.logger.Info(ctx, "delete succeeded", "id", id)
	m.cache.Refresh(ctx)
}

// PendingRemove returns the id awaiting confirmation, if any.
func (m *Coordinator) PendingRemove() (string, bool) {
	return m.pendingRemove, m.pendingRemove != ""
}
