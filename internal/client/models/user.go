// Package models defines the user record read from the directory service and
// the client-held draft used to create or edit one.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultStatus is displayed when the service omits a record status.
const DefaultStatus = "ACTIVE"

// UserRecord is a server-owned user entity as returned by the list call.
// The password is never part of the read side.
type UserRecord struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Status    string `json:"status,omitempty"`
}

// DisplayStatus returns the record status or DefaultStatus when absent.
func (u UserRecord) DisplayStatus() string {
	if u.Status == "" {
		return DefaultStatus
	}
	return u.Status
}

// FullName joins first and last name the way the record table shows them.
func (u UserRecord) FullName() string {
	switch {
	case u.Firstname == "":
		return u.Lastname
	case u.Lastname == "":
		return u.Firstname
	}
	return u.Firstname + " " + u.Lastname
}

// UnmarshalJSON accepts the identifier as "_id" or "id", string or number.
func (u *UserRecord) UnmarshalJSON(b []byte) error {
	type plain UserRecord
	var aux struct {
		plain
		DocID json.RawMessage `json:"_id"`
		ID    json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = UserRecord(aux.plain)

	raw := aux.DocID
	if isAbsent(raw) {
		raw = aux.ID
	}
	id, err := decodeID(raw)
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// isAbsent reports whether raw is a missing or null JSON value.
func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func decodeID(raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return "", nil
	}
	raw = bytes.TrimSpace(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("decode record id: %w", err)
	}
	return n.String(), nil
}
