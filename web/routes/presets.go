package routes

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Xordas/ScreenX/db"
	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/model"
)

const missingName = "Missing name"

type presetsResponse struct {
	Presets []model.Layout `json:"presets"`
}

type presetName struct {
	Name string `json:"name"`
}

func (s *ServerHandler) storageReady(w http.ResponseWriter) bool {
	if s.Storage != nil {
		return true
	}

	writeError(w, http.StatusServiceUnavailable, "preset storage is not configured")

	return false
}

// PresetsHandle lists saved presets in save order.
func (s *ServerHandler) PresetsHandle(w http.ResponseWriter, _ *http.Request) {
	if !s.storageReady(w) {
		return
	}

	presets, err := s.Storage.Presets()
	if err != nil {
		slog.ErrorContext(logCtx, "Failed to list presets", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(w, http.StatusOK, presetsResponse{Presets: presets})
}

// SavePresetHandle stores the posted layout under its name.
func (s *ServerHandler) SavePresetHandle(w http.ResponseWriter, r *http.Request) {
	if !s.storageReady(w) {
		return
	}

	l, err := layout.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	err = s.Storage.SavePreset(l)
	if errors.Is(err, db.ErrMissingName) {
		writeError(w, http.StatusBadRequest, missingName)

		return
	}

	if err != nil {
		slog.ErrorContext(logCtx, "Failed to save preset", "name", l.Name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	slog.InfoContext(logCtx, "Saved preset", "layout", layout.Describe(l))
	writeOK(w)
}

// DeletePresetHandle removes the named preset. Deleting a missing preset succeeds.
func (s *ServerHandler) DeletePresetHandle(w http.ResponseWriter, r *http.Request) {
	if !s.storageReady(w) {
		return
	}

	var body presetName
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())

		return
	}

	err := s.Storage.DeletePreset(body.Name)
	if errors.Is(err, db.ErrMissingName) {
		writeError(w, http.StatusBadRequest, missingName)

		return
	}

	if err != nil {
		slog.ErrorContext(logCtx, "Failed to delete preset", "name", body.Name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	slog.InfoContext(logCtx, "Deleted preset", "name", body.Name)
	writeOK(w)
}
