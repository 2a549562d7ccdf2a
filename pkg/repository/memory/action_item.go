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

type actionItemRepository struct {
	mu     sync.RWMutex
	items  map[types.ActionItemID]*model.ActionItem
	nextID types.ActionItemID
}

func newActionItemRepository() *actionItemRepository {
	return &actionItemRepository{
		items:  make(map[types.ActionItemID]*model.ActionItem),
		nextID: 1,
	}
}

func copyActionItem(a *model.ActionItem) *model.ActionItem {
	copied := *a
	if a.NoteID != nil {
		noteID := *a.NoteID
		copied.NoteID = &noteID
	}
	return &copied
}

// CreateMany validates every item before inserting any of them so the bulk
// insert never partially applies. Note references are not checked against
// existing notes; the store is deliberately permissive about them.
func (r *actionItemRepository) CreateMany(ctx context.Context, items []*model.ActionItem) ([]*model.ActionItem, error) {
	if len(items) == 0 {
		return []*model.ActionItem{}, nil
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid action item")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	result := make([]*model.ActionItem, 0, len(items))
	for _, item := range items {
		created := copyActionItem(item)
		created.ID = r.nextID
		created.CreatedAt = now
		r.nextID++

		r.items[created.ID] = created
		result = append(result, copyActionItem(created))
	}

	return result, nil
}

func (r *actionItemRepository) List(ctx context.Context, noteID *types.NoteID) ([]*model.ActionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ActionItem, 0, len(r.items))
	for _, item := range r.items {
		if noteID != nil && (item.NoteID == nil || *item.NoteID != *noteID) {
			continue
		}
		result = append(result, copyActionItem(item))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})

	return result, nil
}

func (r *actionItemRepository) GetByIDs(ctx context.Context, ids []types.ActionItemID) ([]*model.ActionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.ActionItem, 0, len(ids))
	for _, id := range ids {
		if item, exists := r.items[id]; exists {
			result = append(result, copyActionItem(item))
		}
	}

	return result, nil
}

func (r *actionItemRepository) SetDone(ctx context.Context, id types.ActionItemID, done bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "action item not found", goerr.V("actionItemID", id))
	}

	item.Done = done
	return nil
}
