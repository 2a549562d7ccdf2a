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

type createNoteRequest struct {
	Content string `json:"content"`
}

func createNoteHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		note, err := uc.CreateNote(r.Context(), req.Content)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusCreated, toNoteResponse(note))
	}
}

func listNotesHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := uc.ListNotes(r.Context())
		if err != nil {
			respondError(w, r, err)
			return
		}

		resp := make([]noteResponse, len(notes))
		for i, n := range notes {
			resp[i] = toNoteResponse(n)
		}
		respondJSON(w, r, http.StatusOK, resp)
	}
}

func getNoteHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := types.ParseNoteID(chi.URLParam(r, "noteID"))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}

		note, err := uc.GetNote(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, toNoteResponse(note))
	}
}
