package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

type noteRepository struct {
	mu     sync.RWMutex
	notes  map[types.NoteID]*model.Note
	nextID types.NoteID
}

func newNoteRepository() *noteRepository {
	return &noteRepository{
		notes:  make(map[types.NoteID]*model.Note),
		nextID: 1,
	}
}

func copyNote(n *model.Note) *model.Note {
	copied := *n
	return &copied
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	if err := note.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid note")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyNote(note)
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	r.nextID++

	r.notes[created.ID] = created
	return copyNote(created), nil
}

func (r *noteRepository) List(ctx context.Context) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Note, 0, len(r.notes))
	for _, n := range r.notes {
		result = append(result, copyNote(n))
	}

	// Newest first. IDs are monotonic, so they break ties between notes
	// created within the same clock tick.
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})

	return result, nil
}

func (r *noteRepository) Get(ctx context.Context, id types.NoteID) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, exists := r.notes[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "note not found", goerr.V("noteID", id))
	}

	return copyNote(n), nil
}
