package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/interfaces"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
)

type noteRepository struct {
	db *sql.DB
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	if err := note.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid note")
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (content, created_at) VALUES (?, ?)`,
		note.Content, formatTime(now),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert note")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get note ID")
	}

	return &model.Note{
		ID:        types.NoteID(id),
		Content:   note.Content,
		CreatedAt: now,
	}, nil
}

func (r *noteRepository) List(ctx context.Context) ([]*model.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, content, created_at FROM notes ORDER BY id DESC`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query notes")
	}
	defer rows.Close()

	result := []*model.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, note)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate notes")
	}

	return result, nil
}

func (r *noteRepository) Get(ctx context.Context, id types.NoteID) (*model.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, content, created_at FROM notes WHERE id = ?`,
		id.Int64(),
	)

	note, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "note not found", goerr.V("noteID", id))
		}
		return nil, err
	}

	return note, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*model.Note, error) {
	var (
		id        int64
		content   string
		createdAt string
	)
	if err := row.Scan(&id, &content, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, goerr.Wrap(err, "failed to scan note row")
	}

	ts, err := parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &model.Note{
		ID:        types.NoteID(id),
		Content:   content,
		CreatedAt: ts,
	}, nil
}
