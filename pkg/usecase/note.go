package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

// NoteUseCase handles note creation and retrieval
type NoteUseCase struct {
	repo interfaces.Repository
}

func NewNoteUseCase(repo interfaces.Repository) *NoteUseCase {
	return &NoteUseCase{repo: repo}
}

// CreateNote persists a new note. Content must not be blank.
func (uc *NoteUseCase) CreateNote(ctx context.Context, content string) (*model.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, goerr.Wrap(ErrEmptyContent, "failed to create note")
	}

	note, err := uc.repo.Note().Create(ctx, &model.Note{Content: content})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create note")
	}

	return note, nil
}

// ListNotes returns all notes, newest first
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*model.Note, error) {
	notes, err := uc.repo.Note().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notes")
	}
	return notes, nil
}

// GetNote returns a single note by ID
func (uc *NoteUseCase) GetNote(ctx context.Context, id types.NoteID) (*model.Note, error) {
	note, err := uc.repo.Note().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrNoteNotFound, "failed to get note", goerr.V(NoteIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to get note", goerr.V(NoteIDKey, id))
	}
	return note, nil
}
