package types

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// NoteID identifies a persisted note. IDs are assigned by the repository
// backend and are always positive.
type NoteID int64

// ActionItemID identifies a persisted action item.
type ActionItemID int64

func (id NoteID) Int64() int64 {
	return int64(id)
}

func (id NoteID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Validate checks if the NoteID is a valid assigned ID
func (id NoteID) Validate() error {
	if id <= 0 {
		return goerr.New("note ID must be positive", goerr.V("id", int64(id)))
	}
	return nil
}

func (id ActionItemID) Int64() int64 {
	return int64(id)
}

func (id ActionItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Validate checks if the ActionItemID is a valid assigned ID
func (id ActionItemID) Validate() error {
	if id <= 0 {
		return goerr.New("action item ID must be positive", goerr.V("id", int64(id)))
	}
	return nil
}

// ParseNoteID parses a decimal string into a NoteID
func ParseNoteID(s string) (NoteID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid note ID", goerr.V("input", s))
	}
	id := NoteID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseActionItemID parses a decimal string into an ActionItemID
func ParseActionItemID(s string) (ActionItemID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(err, "invalid action item ID", goerr.V("input", s))
	}
	id := ActionItemID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}
