package services

import "github.com/dmitrijs2005/usermgmt/internal/client/models"

// Form is the editable draft plus its edit session. Mode is create exactly
// when there is no target id.
type Form struct {
	mode     models.Mode
	targetID string
	draft    models.Draft

	changed func()
	focus   func()
}

func newForm(changed, focus func()) *Form {
	return &Form{mode: models.ModeCreate, changed: changed, focus: focus}
}

// BeginEdit loads r into the draft and switches to edit mode. The username is
// kept but plays no part in edit submissions; the password starts empty.
func (f *Form) BeginEdit(r models.UserRecord) {
	f.mode = models.ModeEdit
	f.targetID = r.ID
	f.draft = models.Draft{
		Username:  r.Username,
		Email:     r.Email,
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
	}
	f.changed()
	f.focus()
}

// Reset returns to create mode with an all-empty draft.
func (f *Form) Reset() {
	f.mode = models.ModeCreate
	f.targetID = ""
	f.draft = models.Draft{}
	f.changed()
}

// UpdateField sets a single draft field.
func (f *Form) UpdateField(field models.Field, value string) {
	f.draft.Set(field, value)
	f.changed()
}

func (f *Form) Mode() models.Mode {
	return f.mode
}

// TargetID returns the id of the record being edited, if any.
func (f *Form) TargetID() (string, bool) {
	return f.targetID, f.mode == models.ModeEdit
}

func (f *Form) Draft() models.Draft {
	return f.draft
}

// CanReset reports whether an explicit cancel is worth offering.
func (f *Form) CanReset() bool {
	return f.mode == models.ModeEdit || f.draft.Username != ""
}

// VisibleFields lists the fields shown in the current mode.
func (f *Form) VisibleFields() []models.Field {
	return f.mode.VisibleFields()
}

func (f *Form) Title() string {
	return f.mode.FormTitle()
}

func (f *Form) SubmitLabel() string {
	return f.mode.SubmitLabel()
}

func (f *Form) PasswordLabel() string {
	return f.mode.FieldLabel(models.FieldPassword)
}
