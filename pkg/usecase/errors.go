package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Validation errors
	ErrEmptyContent = errors.New("note content must not be empty")
	ErrEmptyText    = errors.New("text must not be empty")

	// Not found errors
	ErrNoteNotFound       = errors.New("note not found")
	ErrActionItemNotFound = errors.New("action item not found")
)

// Context keys for error values
const (
	NoteIDKey       = "note_id"
	ActionItemIDKey = "action_item_id"
)
