package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Xordas/ScreenX/db"
	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/widgets"
)

type widgetsResponse struct {
	Widgets []widgets.Descriptor `json:"widgets"`
}

// WidgetsHandle lists the slot choices, None first.
func (s *ServerHandler) WidgetsHandle(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, widgetsResponse{Widgets: s.Catalog.Options()})
}

// ApplyLayout shows l on both previews and remembers it as the current layout.
func (s *ServerHandler) ApplyLayout(l model.Layout) error {
	l = layout.Normalize(l)

	for _, problem := range layout.Validate(l, s.Catalog) {
		slog.WarnContext(logCtx, "Layout slot will stay empty", "problem", problem.Error())
	}

	s.liveView.SetLayout(l)
	s.demoView.SetLayout(l)

	slog.InfoContext(logCtx, "Applied layout", "layout", layout.Describe(l))

	if s.Storage == nil {
		return nil
	}

	return s.Storage.SaveCurrentLayout(l)
}

// LayoutHandle returns the shown layout on GET and replaces it on POST.
func (s *ServerHandler) LayoutHandle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, layout.Normalize(s.Layout()))
	case http.MethodPost:
		l, err := layout.Decode(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())

			return
		}

		if err := s.ApplyLayout(l); err != nil {
			slog.ErrorContext(logCtx, "Could not persist layout", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())

			return
		}

		writeOK(w)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type currentLayoutResponse struct {
	OK     bool          `json:"ok"`
	Layout *model.Layout `json:"layout"`
}

// CurrentLayoutHandle returns the persisted layout, or null when none was saved yet.
func (s *ServerHandler) CurrentLayoutHandle(w http.ResponseWriter, _ *http.Request) {
	if s.Storage == nil {
		writeJSON(w, http.StatusOK, currentLayoutResponse{OK: true})

		return
	}

	l, err := s.Storage.CurrentLayout()
	if errors.Is(err, db.ErrNotFound) {
		writeJSON(w, http.StatusOK, currentLayoutResponse{OK: true})

		return
	}

	if err != nil {
		slog.ErrorContext(logCtx, "Could not load current layout", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, currentLayoutResponse{OK: true, Layout: &l})
}
