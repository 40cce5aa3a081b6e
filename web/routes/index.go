package routes

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/surface"
	cs "github.com/Xordas/ScreenX/web/components"
)

const (
	pageTitle      = "ScreenX preview"
	defaultRefresh = 2
)

// BuildPageContext collects what the index page shows.
func (s *ServerHandler) BuildPageContext(width, refresh int) cs.PageContext {
	l := layout.Normalize(s.Layout())

	var names []string

	if s.Storage != nil {
		presets, err := s.Storage.Presets()
		if err != nil {
			slog.WarnContext(logCtx, "Failed to list presets", "error", err)
		}

		for _, p := range presets {
			names = append(names, p.Name)
		}
	}

	return cs.PageContext{
		Title:   pageTitle,
		Summary: layout.Describe(l),
		Slots:   cs.BuildSlots(l, s.Catalog),
		Cards:   cs.BuildCards(layout.ActiveKinds(l), s.Catalog, s.Live.Snapshot()),
		Presets: names,
		Width:   width,
		Refresh: refresh,
	}
}

// IndexHandle renders the preview page. ?width= sets the image width and ?refresh= the
// reload interval in seconds.
func (s *ServerHandler) IndexHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(logCtx, "Handling index page request")

	width := int(surface.Compute(0, 1, s.Bounds).DisplayWidth)

	refresh := defaultRefresh

	for name, target := range map[string]*int{"width": &width, "refresh": &refresh} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			http.Error(w, "invalid "+name, http.StatusBadRequest)

			return
		}

		*target = v
	}

	pc := s.BuildPageContext(width, refresh)

	if err := SafeRenderTemplate(cs.Page(&pc), w); err != nil {
		slog.ErrorContext(logCtx, "Failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
