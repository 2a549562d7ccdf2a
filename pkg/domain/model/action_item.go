package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

// ActionItem is a single extracted task. NoteID is nil when the item was
// extracted without persisting the source note. Only the Done flag is
// mutable after creation.
type ActionItem struct {
	ID        types.ActionItemID
	NoteID    *types.NoteID
	Text      string
	Done      bool
	CreatedAt time.Time
}

// Validate checks if the action item is valid for creation. Item text must
// never be empty or whitespace-only; the extractor filters such lines out
// before an item is constructed.
func (a *ActionItem) Validate() error {
	if strings.TrimSpace(a.Text) == "" {
		return goerr.New("action item text is required")
	}
	return nil
}
