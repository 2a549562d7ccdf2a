package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

// Note is a free-form text note submitted by a caller. Notes are immutable
// once created; they are only read or referenced by action items.
type Note struct {
	ID        types.NoteID
	Content   string
	CreatedAt time.Time
}

// Validate checks if the note is valid for creation
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Content) == "" {
		return goerr.New("note content is required")
	}
	return nil
}
