package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

func noteIDPtr(id int64) *types.NoteID {
	v := types.NoteID(id)
	return &v
}

func runActionItemRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("CreateMany assigns IDs and timestamps in input order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ActionItem().CreateMany(ctx, []*model.ActionItem{
			{Text: "Buy milk"},
			{Text: "Call Bob"},
		})
		gt.NoError(t, err).Required()

		gt.Array(t, created).Length(2).Required()
		gt.Value(t, created[0].Text).Equal("Buy milk")
		gt.Value(t, created[1].Text).Equal("Call Bob")
		gt.Bool(t, created[1].ID > created[0].ID).True()
		gt.Bool(t, created[0].CreatedAt.IsZero()).False()
		gt.Bool(t, created[0].Done).False()
	})

	t.Run("CreateMany with empty input", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ActionItem().CreateMany(ctx, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, created).Length(0)
	})

	t.Run("CreateMany never partially applies", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.ActionItem().CreateMany(ctx, []*model.ActionItem{
			{Text: "valid"},
			{Text: "   "},
		})
		gt.Value(t, err).NotNil()

		items, err := repo.ActionItem().List(ctx, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, items).Length(0)
	})

	t.Run("keeps items whose note reference does not exist", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ActionItem().CreateMany(ctx, []*model.ActionItem{
			{Text: "orphaned", NoteID: noteIDPtr(12345)},
		})
		gt.NoError(t, err).Required()

		gt.Array(t, created).Length(1).Required()
		gt.Value(t, *created[0].NoteID).Equal(types.NoteID(12345))

		items, err := repo.ActionItem().List(ctx, noteIDPtr(12345))
		gt.NoError(t, err).Required()
		gt.Array(t, items).Length(1)
	})

	t.Run("List filters by note ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		note, err := repo.Note().Create(ctx, &model.Note{Content: "note"})
		gt.NoError(t, err).Required()

		_, err = repo.ActionItem().CreateMany(ctx, []*model.ActionItem{
			{Text: "linked", NoteID: &note.ID},
			{Text: "free-standing"},
		})
		gt.NoError(t, err).Required()

		linked, err := repo.ActionItem().List(ctx, &note.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, linked).Length(1).Required()
		gt.Value(t, linked[0].Text).Equal("linked")

		all, err := repo.ActionItem().List(ctx, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, all).Length(2)
	})

	t.Run("List returns newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		older, err := repo.ActionItem().CreateMany(ctx, []*model.ActionItem{{Text: "older"}})
		gt.NoError(t, err).Required()
		newer, err := repo.ActionItem().CreateMany(ctx, []*model.ActionItem{{Text: "newer"}})
		gt.NoError(t, err).Required()

		items, err := repo.ActionItem().List(ctx, nil)
		gt.NoError(t, err).Required()

		gt.Array(t, items).Length(2).Required()
		gt.Value(t, items[0].ID).Equal(newer[0].ID)
		gt.Value(t, items[1].ID).Equal(older[0].ID)
	})

	t.Run("GetByIDs skips unknown IDs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ActionItem().CreateMany(ctx, []*model.ActionItem{
			{Text: "a"},
			{Text: "b"},
		})
		gt.NoError(t, err).Required()

		retrieved, err := repo.ActionItem().GetByIDs(ctx, []types.ActionItemID{
			created[0].ID,
			types.ActionItemID(99999),
			created[1].ID,
		})
		gt.NoError(t, err).Required()
		gt.Array(t, retrieved).Length(2)
	})

	t.Run("GetByIDs with empty input", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		retrieved, err := repo.ActionItem().GetByIDs(ctx, nil)
		gt.NoError(t, err).Required()
		gt.Array(t, retrieved).Length(0)
	})

	t.Run("SetDone toggles the flag both ways", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.ActionItem().CreateMany(ctx, []*model.ActionItem{{Text: "task"}})
		gt.NoError(t, err).Required()
		id := created[0].ID

		gt.NoError(t, repo.ActionItem().SetDone(ctx, id, true)).Required()

		retrieved, err := repo.ActionItem().GetByIDs(ctx, []types.ActionItemID{id})
		gt.NoError(t, err).Required()
		gt.Array(t, retrieved).Length(1).Required()
		gt.Bool(t, retrieved[0].Done).True()

		gt.NoError(t, repo.ActionItem().SetDone(ctx, id, false)).Required()

		retrieved, err = repo.ActionItem().GetByIDs(ctx, []types.ActionItemID{id})
		gt.NoError(t, err).Required()
		gt.Bool(t, retrieved[0].Done).False()
	})

	t.Run("SetDone returns not-found for unknown ID", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		err := repo.ActionItem().SetDone(ctx, types.ActionItemID(99999), true)
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}

func TestActionItemRepository_Memory(t *testing.T) {
	runActionItemRepositoryTest(t, newMemoryRepo)
}

func TestActionItemRepository_SQLite(t *testing.T) {
	runActionItemRepositoryTest(t, newSQLiteRepo)
}
