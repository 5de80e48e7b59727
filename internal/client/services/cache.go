package services

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/usermgmt/internal/client/client"
	"github.com/dmitrijs2005/usermgmt/internal/client/loop"
	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/logging"
)

// RecordCache holds the latest fetched snapshot of the collection.
//
// Each Refresh takes a new generation number; only the completion of the
// latest generation is committed, so an older reply arriving late can never
// overwrite a newer one.
type RecordCache struct {
	api     client.Client
	loop    *loop.Loop
	logger  logging.Logger
	alert   func(string)
	changed func()

	records []models.UserRecord
	loading bool
	issued  uint64
}

func newRecordCache(api client.Client, l *loop.Loop, logger logging.Logger, alert func(string), changed func()) *RecordCache {
	return &RecordCache{
		api:     api,
		loop:    l,
		logger:  logger,
		alert:   alert,
		changed: changed,
		records: []models.UserRecord{},
		loading: true,
	}
}

// Refresh requests the full collection. On failure the previous records are
// kept and a notice is raised. No retry is scheduled.
func (c *RecordCache) Refresh(ctx context.Context) {
	c.issued++
	gen := c.issued
	c.loading = true
	c.changed()

	callCtx := context.WithoutCancel(ctx)
	c.loop.Go(func() func() {
		records, err := c.api.List(callCtx)
		return func() { c.commit(ctx, gen, records, err) }
	})
}

func (c *RecordCache) commit(ctx context.Context, gen uint64, records []models.UserRecord, err error) {
	if gen != c.issued {
		c.logger.Warn(ctx, "discarding stale refresh", "generation", gen, "latest", c.issued, "failed", err != nil)
		return
	}

	c.loading = false
	if err != nil {
		c.logger.Error(ctx, "fetch records", "error", err, "generation", gen)
		c.changed()
		c.alert(NoticeListFailed)
		return
	}

	if records == nil {
		records = []models.UserRecord{}
	}
	c.records = records
	c.logger.Info(ctx, "records refreshed", "count", len(records), "generation", gen)
	c.changed()
}

// Records returns a copy of the cached records in server order.
func (c *RecordCache) Records() []models.UserRecord {
	return slices.Clone(c.records)
}

// Loading reports whether the latest refresh is still outstanding.
func (c *RecordCache) Loading() bool {
	return c.loading
}

// Generation returns the number of refreshes issued so far.
func (c *RecordCache) Generation() uint64 {
	return c.issued
}

// Find returns the cached record with the given id.
func (c *RecordCache) Find(id string) (models.UserRecord, bool) {
	i := slices.IndexFunc(c.records, func(r models.UserRecord) bool { return r.ID == id })
	if i < 0 {
		return models.UserRecord{}, false
	}
	return c.records[i], true
}
