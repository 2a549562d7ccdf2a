package memory

import (
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
)

// Memory is an in-memory repository backend for development and testing
type Memory struct {
	note       *noteRepository
	actionItem *actionItemRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		note:       newNoteRepository(),
		actionItem: newActionItemRepository(),
	}
}

func (m *Memory) Note() interfaces.NoteRepository {
	return m.note
}

func (m *Memory) ActionItem() interfaces.ActionItemRepository {
	return m.actionItem
}

func (m *Memory) Close() error {
	return nil
}
