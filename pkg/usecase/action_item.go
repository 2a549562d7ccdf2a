package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

// ActionItemUseCase handles listing and updating action items
type ActionItemUseCase struct {
	repo interfaces.Repository
}

func NewActionItemUseCase(repo interfaces.Repository) *ActionItemUseCase {
	return &ActionItemUseCase{repo: repo}
}

// ListActionItems returns action items, optionally filtered by note ID,
// newest first.
func (uc *ActionItemUseCase) ListActionItems(ctx context.Context, noteID *types.NoteID) ([]*model.ActionItem, error) {
	items, err := uc.repo.ActionItem().List(ctx, noteID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list action items")
	}
	return items, nil
}

// SetDone updates the done flag of a single action item
func (uc *ActionItemUseCase) SetDone(ctx context.Context, id types.ActionItemID, done bool) error {
	if err := uc.repo.ActionItem().SetDone(ctx, id, done); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrActionItemNotFound, "failed to update action item", goerr.V(ActionItemIDKey, id))
		}
		return goerr.Wrap(err, "failed to update action item", goerr.V(ActionItemIDKey, id))
	}
	return nil
}
