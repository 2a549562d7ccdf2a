package interfaces

import (
	"context"

	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Note() NoteRepository
	ActionItem() ActionItemRepository

	Close() error
}

// NoteRepository persists notes. Notes are immutable; there is no update
// or delete operation.
type NoteRepository interface {
	// Create inserts the note and returns it with the assigned ID and
	// creation timestamp.
	Create(ctx context.Context, note *model.Note) (*model.Note, error)

	// List returns all notes, newest first.
	List(ctx context.Context) ([]*model.Note, error)

	// Get returns the note with the given ID, or a not-found error.
	Get(ctx context.Context, id types.NoteID) (*model.Note, error)
}

// ActionItemRepository persists action items.
type ActionItemRepository interface {
	// CreateMany inserts the given items in one transaction and returns
	// them with assigned IDs and timestamps. An empty input yields an
	// empty result and no error. The insert never partially applies.
	CreateMany(ctx context.Context, items []*model.ActionItem) ([]*model.ActionItem, error)

	// List returns action items newest first, filtered by note ID when
	// noteID is non-nil.
	List(ctx context.Context, noteID *types.NoteID) ([]*model.ActionItem, error)

	// GetByIDs returns the items matching the given IDs. Unknown IDs are
	// silently skipped.
	GetByIDs(ctx context.Context, ids []types.ActionItemID) ([]*model.ActionItem, error)

	// SetDone updates the done flag of a single item, or returns a
	// not-found error.
	SetDone(ctx context.Context, id types.ActionItemID, done bool) error
}
