package routes

import (
	"net/http"

	"github.com/Xordas/ScreenX/model"
)

// TelemetryHandle merges a JSON patch into the live telemetry and returns the result.
func (s *ServerHandler) TelemetryHandle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.Live.Snapshot())
	case http.MethodPost:
		var patch model.Patch
		if err := decodeBody(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())

			return
		}

		s.Live.Update(patch)
		writeJSON(w, http.StatusOK, s.Live.Snapshot())
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
