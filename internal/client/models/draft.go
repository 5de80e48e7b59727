package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode tells whether the draft describes a new record or an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Field names a single editable draft field.
type Field string

const (
	FieldUsername  Field = "username"
	FieldEmail     Field = "email"
	FieldPassword  Field = "password"
	FieldFirstname Field = "firstname"
	FieldLastname  Field = "lastname"
)

// Fields lists the draft fields in form order.
var Fields = []Field{FieldUsername, FieldEmail, FieldPassword, FieldFirstname, FieldLastname}

var ErrUnknownField = errors.New("unknown field")

// ParseField maps user input to a Field, ignoring case.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Draft is the uncommitted edit buffer. All fields are independently editable.
// Username only matters in create mode; Password empty in edit mode means
// "keep the stored password".
type Draft struct {
	Username  string
	Email     string
	Password  string
	Firstname string
	Lastname  string
}

// Set assigns a single field. Unknown fields are ignored.
func (d *Draft) Set(f Field, value string) {
	switch f {
	case FieldUsername:
		d.Username = value
	case FieldEmail:
		d.Email = value
	case FieldPassword:
		d.Password = value
	case FieldFirstname:
		d.Firstname = value
	case FieldLastname:
		d.Lastname = value
	}
}

// Get returns the value of a single field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldUsername:
		return d.Username
	case FieldEmail:
		return d.Email
	case FieldPassword:
		return d.Password
	case FieldFirstname:
		return d.Firstname
	case FieldLastname:
		return d.Lastname
	}
	return ""
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// CreatePayload is the body of the create call. All fields are sent verbatim.
type CreatePayload struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// UpdatePayload is the body of the update call. It never carries a username.
// A nil Password is omitted from the wire so the stored password is kept.
type UpdatePayload struct {
	Email     string  `json:"email" validate:"required"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Password  *string `json:"password,omitempty"`
}

// CreatePayload builds the create body from the draft.
func (d Draft) CreatePayload() CreatePayload {
	return CreatePayload{
		Username:  d.Username,
		Email:     d.Email,
		Password:  d.Password,
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
	}
}

// UpdatePayload builds the update body from the draft. The password is
// present only when the operator typed one.
func (d Draft) UpdatePayload() UpdatePayload {
	p := UpdatePayload{
		Email:     d.Email,
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
	}
	if d.Password != "" {
		pw := d.Password
		p.Password = &pw
	}
	return p
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrRequired is wrapped by ValidateRequired when a required field is blank.
var ErrRequired = errors.New("required field is empty")

// ValidateRequired checks the presence constraints of a create or update
// payload. No format or business rules are checked here.
func ValidateRequired(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s", ErrRequired, strings.Join(names, ", "))
}

// FormTitle is the heading of the form in this mode.
func (m Mode) FormTitle() string {
	if m == ModeEdit {
		return "Update User Profile"
	}
	return "Register New Account"
}

// SubmitLabel names the submit action in this mode.
func (m Mode) SubmitLabel() string {
	if m == ModeEdit {
		return "Save Changes"
	}
	return "Create User"
}

// FieldLabel is the label shown next to a field in this mode.
func (m Mode) FieldLabel(f Field) string {
	switch f {
	case FieldUsername:
		return "Username"
	case FieldEmail:
		return "Email Address"
	case FieldPassword:
		if m == ModeEdit {
			return "New Password (optional)"
		}
		return "Password"
	case FieldFirstname:
		return "First Name"
	case FieldLastname:
		return "Last Name"
	}
	return string(f)
}

// VisibleFields lists the fields shown in this mode; username is hidden
// while editing.
func (m Mode) VisibleFields() []Field {
	if m == ModeEdit {
		return []Field{FieldEmail, FieldPassword, FieldFirstname, FieldLastname}
	}
	return Fields
}
