package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/model"
	"github.com/secmon-lab/taskmine/pkg/usecase"
	"github.com/secmon-lab/taskmine/pkg/utils/errutil"
	"github.com/secmon-lab/taskmine/pkg/utils/safe"
)

type noteResponse struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type actionItemResponse struct {
	ID        int64  `json:"id"`
	NoteID    *int64 `json:"note_id"`
	Text      string `json:"text"`
	Done      bool   `json:"done"`
	CreatedAt string `json:"created_at"`
}

func toNoteResponse(n *model.Note) noteResponse {
	return noteResponse{
		ID:        n.ID.Int64(),
		Content:   n.Content,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toActionItemResponse(a *model.ActionItem) actionItemResponse {
	resp := actionItemResponse{
		ID:        a.ID.Int64(),
		Text:      a.Text,
		Done:      a.Done,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.NoteID != nil {
		id := a.NoteID.Int64()
		resp.NoteID = &id
	}
	return resp
}

func respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	safe.Write(r.Context(), w, data)
}

// respondError maps use case errors to HTTP status codes per the error
// taxonomy: validation 400, not found 404, everything else 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrEmptyContent), errors.Is(err, usecase.ErrEmptyText):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrNoteNotFound), errors.Is(err, usecase.ErrActionItemNotFound):
		status = http.StatusNotFound
	}
	errutil.HandleHTTP(r.Context(), w, err, status)
}
