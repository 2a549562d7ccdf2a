package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/pkg/domain/types"
	"github.com/secmon-lab/taskmine/pkg/usecase"
	"github.com/secmon-lab/taskmine/pkg/utils/errutil"
)

type extractRequest struct {
	Text     string `json:"text"`
	SaveNote bool   `json:"save_note"`
}

type extractResponse struct {
	NoteID *int64               `json:"note_id"`
	Items  []actionItemResponse `json:"items"`
}

func extractHandler(uc *usecase.ExtractUseCase, mode usecase.ExtractMode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		result, err := uc.Extract(r.Context(), req.Text, req.SaveNote, mode)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := extractResponse{
			Items: make([]actionItemResponse, len(result.Items)),
		}
		if result.NoteID != nil {
			id := result.NoteID.Int64()
			resp.NoteID = &id
		}
		for i, item := range result.Items {
			resp.Items[i] = toActionItemResponse(item)
		}

		respondJSON(w, r, http.StatusOK, resp)
	}
}

func listActionItemsHandler(uc *usecase.ActionItemUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var noteID *types.NoteID
		if raw := r.URL.Query().Get("note_id"); raw != "" {
			id, err := types.ParseNoteID(raw)
			if err != nil {
				errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
				return
			}
			noteID = &id
		}

		items, err := uc.ListActionItems(r.Context(), noteID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]actionItemResponse, len(items))
		for i, item := range items {
			resp[i] = toActionItemResponse(item)
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

type markDoneRequest struct {
	Done bool `json:"done"`
}

type markDoneResponse struct {
	ID   int64 `json:"id"`
	Done bool  `json:"done"`
}

func markDoneHandler(uc *usecase.ActionItemUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := types.ParseActionItemID(chi.URLParam(r, "actionItemID"))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		var req markDoneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		if err := uc.SetDone(r.Context(), id, req.Done); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, markDoneResponse{ID: id.Int64(), Done: req.Done})
	}
}
