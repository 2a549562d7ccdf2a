package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

type actionItemRepository struct {
	db *sql.DB
}

// CreateMany inserts all items inside one transaction so a failure midway
// never leaves a partial batch behind.
func (r *actionItemRepository) CreateMany(ctx context.Context, items []*model.ActionItem) ([]*model.ActionItem, error) {
	if len(items) == 0 {
		return []*model.ActionItem{}, nil
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid action item")
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()
	result := make([]*model.ActionItem, 0, len(items))
	for _, item := range items {
		var noteID any
		if item.NoteID != nil {
			noteID = item.NoteID.Int64()
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO action_items (note_id, text, done, created_at) VALUES (?, ?, ?, ?)`,
			noteID, item.Text, boolToInt(item.Done), formatTime(now),
		)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to insert action item")
		}

		id, err := res.LastInsertId()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get action item ID")
		}

		created := &model.ActionItem{
			ID:        types.ActionItemID(id),
			Text:      item.Text,
			Done:      item.Done,
			CreatedAt: now,
		}
		if item.NoteID != nil {
			v := *item.NoteID
			created.NoteID = &v
		}
		result = append(result, created)
	}

	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit action items")
	}

	return result, nil
}

func (r *actionItemRepository) List(ctx context.Context, noteID *types.NoteID) ([]*model.ActionItem, error) {
	query := `SELECT id, note_id, text, done, created_at FROM action_items`
	args := []any{}
	if noteID != nil {
		query += ` WHERE note_id = ?`
		args = append(args, noteID.Int64())
	}
	query += ` ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query action items")
	}
	defer rows.Close()

	return scanActionItems(rows)
}

func (r *actionItemRepository) GetByIDs(ctx context.Context, ids []types.ActionItemID) ([]*model.ActionItem, error) {
	if len(ids) == 0 {
		return []*model.ActionItem{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id.Int64()
	}

	query := `SELECT id, note_id, text, done, created_at FROM action_items WHERE id IN (` +
		strings.Join(placeholders, ",") + `) ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query action items by IDs")
	}
	defer rows.Close()

	return scanActionItems(rows)
}

func (r *actionItemRepository) SetDone(ctx context.Context, id types.ActionItemID, done bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE action_items SET done = ? WHERE id = ?`,
		boolToInt(done), id.Int64(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to update action item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(interfaces.ErrNotFound, "action item not found", goerr.V("actionItemID", id))
	}

	return nil
}

func scanActionItems(rows *sql.Rows) ([]*model.ActionItem, error) {
	result := []*model.ActionItem{}
	for rows.Next() {
		var (
			id        int64
			noteID    sql.NullInt64
			text      string
			done      int
			createdAt string
		)
		if err := rows.Scan(&id, &noteID, &text, &done, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan action item row")
		}

		ts, err := parseTime(createdAt)
		if err != nil {
			return nil, err
		}

		item := &model.ActionItem{
			ID:        types.ActionItemID(id),
			Text:      text,
			Done:      done != 0,
			CreatedAt: ts,
		}
		if noteID.Valid {
			v := types.NoteID(noteID.Int64)
			item.NoteID = &v
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate action items")
	}

	return result, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
