package services

import (
	"errors"

	"github.com/dmitrijs2005/usermgmt/internal/client/models"
	"github.com/dmitrijs2005/usermgmt/internal/netx"
)

// Generic notices used when the service gives no message.
const (
	NoticeListFailed   = "Failed to load users"
	NoticeSubmitFailed = "Operation failed"
	NoticeDeleteFailed = "Delete failed"
)

// Presenter receives the side effects the core hands to the presentation layer.
type Presenter interface {
	// Render shows the current state.
	Render(v View)
	// Alert raises a user-visible notice.
	Alert(msg string)
	// FocusForm brings the form into view.
	FocusForm()
	// ConfirmDelete asks the operator to confirm removing id. The answer comes
	// back through Console.ResolveRemove.
	ConfirmDelete(id string)
}

// View is a snapshot of the console state. Records is a copy.
type View struct {
	Records  []models.UserRecord
	Loading  bool
	Mode     models.Mode
	TargetID string
	Draft    models.Draft
}

// Empty reports whether the list finished loading with no records.
func (v View) Empty() bool {
	return !v.Loading && len(v.Records) == 0
}

// NoticeFor returns the server-provided message carried by err, or fallback.
func NoticeFor(err error, fallback string) string {
	var se *netx.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

// CanReset reports whether an explicit cancel is worth offering.
func (v View) CanReset() bool {
	return v.Mode == models.ModeEdit || v.Draft.Username != ""
}
