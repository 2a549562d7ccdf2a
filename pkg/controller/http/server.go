package http

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/taskmine/frontend"
	"github.com/secmon-lab/taskmine/pkg/usecase"
	"github.com/secmon-lab/taskmine/pkg/utils/logging"
	"github.com/secmon-lab/taskmine/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
}

func New(uc *usecase.UseCases) (*Server, error) {
	r := chi.NewRouter()
	s := &Server{router: r}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/notes", func(r chi.Router) {
		r.Post("/", createNoteHandler(uc.Note))
		r.Get("/", listNotesHandler(uc.Note))
		r.Get("/{noteID}", getNoteHandler(uc.Note))
	})

	r.Route("/action-items", func(r chi.Router) {
		r.Post("/extract", extractHandler(uc.Extract, usecase.ModeHeuristic))
		r.Post("/extract-llm", extractHandler(uc.Extract, usecase.ModeLLM))
		r.Get("/", listActionItemsHandler(uc.ActionItem))
		r.Post("/{actionItemID}/done", markDoneHandler(uc.ActionItem))
	})

	// Static file serving for the front end (catch-all, must be last)
	staticFS, err := fs.Sub(frontend.StaticFiles, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to bind dist dir for static")
	}
	r.Get("/*", staticHandler(staticFS))

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// staticHandler serves embedded static files, falling back to index.html
// for the root path
func staticHandler(staticFS fs.FS) http.HandlerFunc {
	fileServer := http.FileServer(http.FS(staticFS))

	return func(w http.ResponseWriter, r *http.Request) {
		urlPath := strings.TrimPrefix(r.URL.Path, "/")
		if urlPath == "" {
			urlPath = "index.html"
		}

		file, err := staticFS.Open(urlPath)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		safe.Close(r.Context(), file)

		fileServer.ServeHTTP(w, r)
	}
}
