package routes_test

import (
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Xordas/ScreenX/layout"
	"github.com/Xordas/ScreenX/model"
	"github.com/Xordas/ScreenX/surface"
	"github.com/Xordas/ScreenX/telemetry"
	"github.com/Xordas/ScreenX/web/routes"
	"github.com/Xordas/ScreenX/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultLayoutJSON = `{
	"name": "Default",
	"left": {"primary": "tires", "secondary": "abs_tc"},
	"middle": {"primary": "gear", "secondary": "rpm"},
	"right": {"primary": "pit", "secondary": "speed"}
}`

func setupHandler(storage *StorageMock) *routes.ServerHandler {
	cfg := routes.Config{
		Catalog: widgets.Default(),
		Live:    telemetry.NewLiveSource(),
		Layout:  layout.Default(),
		Bounds:  surface.DefaultBounds(),
	}

	if storage != nil {
		cfg.Storage = storage
	}

	return routes.NewServerHandler(cfg)
}

func do(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	return recorder
}

func TestWidgetsHandle(t *testing.T) {
	h := setupHandler(&StorageMock{})

	rec := do(h.WidgetsHandle, http.MethodGet, "/api/widgets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Widgets []widgets.Descriptor `json:"widgets"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Widgets, 17)
	assert.Equal(t, model.KindNone, body.Widgets[0].Kind)
	assert.Equal(t, model.KindGear, body.Widgets[1].Kind)
}

func TestLayoutHandle(t *testing.T) {
	t.Run("get returns the shown layout", func(t *testing.T) {
		h := setupHandler(&StorageMock{})

		rec := do(h.LayoutHandle, http.MethodGet, "/api/layout", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, defaultLayoutJSON, rec.Body.String())
	})

	t.Run("post applies and persists", func(t *testing.T) {
		storage := &StorageMock{}
		h := setupHandler(storage)

		rec := do(h.LayoutHandle, http.MethodPost, "/api/layout",
			`{"name":"Race","left":{"primary":"Tires"},"middle":{"primary":"gear","secondary":"none"},"right":{"primary":"fuel","secondary":"warp"}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

		want := model.Layout{
			Name:   "Race",
			Left:   model.ZoneConfig{Primary: model.KindTires, Secondary: model.KindNone},
			Middle: model.ZoneConfig{Primary: model.KindGear, Secondary: model.KindNone},
			Right:  model.ZoneConfig{Primary: model.KindFuel, Secondary: "warp"},
		}
		assert.Equal(t, want, h.Layout())
		require.NotNil(t, storage.Current)
		assert.Equal(t, want, *storage.Current)
	})

	t.Run("invalid body", func(t *testing.T) {
		storage := &StorageMock{}
		h := setupHandler(storage)

		rec := do(h.LayoutHandle, http.MethodPost, "/api/layout", `{"left":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok":false`)
		assert.Nil(t, storage.Current)
		assert.Equal(t, layout.Default(), h.Layout())
	})

	t.Run("storage failure", func(t *testing.T) {
		h := setupHandler(&StorageMock{ReturnError: errors.New("disk full")})

		rec := do(h.LayoutHandle, http.MethodPost, "/api/layout", defaultLayoutJSON)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "disk full")
	})

	t.Run("method not allowed", func(t *testing.T) {
		h := setupHandler(&StorageMock{})

		rec := do(h.LayoutHandle, http.MethodDelete, "/api/layout", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
	})
}

func TestCurrentLayoutHandle(t *testing.T) {
	storage := &StorageMock{}
	h := setupHandler(storage)

	rec := do(h.CurrentLayoutHandle, http.MethodGet, "/api/layout/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"layout":null}`, rec.Body.String())

	require.NoError(t, h.ApplyLayout(layout.Default()))

	rec = do(h.CurrentLayoutHandle, http.MethodGet, "/api/layout/current", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"layout":`+defaultLayoutJSON+`}`, rec.Body.String())

	storage.ReturnError = errors.New("locked")
	rec = do(h.CurrentLayoutHandle, http.MethodGet, "/api/layout/current", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPresetHandlers(t *testing.T) {
	t.Run("save requires a name", func(t *testing.T) {
		h := setupHandler(&StorageMock{})

		rec := do(h.SavePresetHandle, http.MethodPost, "/api/layout/presets/save", `{"left":{"primary":"gear"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Missing name"}`, rec.Body.String())
	})

	t.Run("delete requires a name", func(t *testing.T) {
		h := setupHandler(&StorageMock{})

		rec := do(h.DeletePresetHandle, http.MethodPost, "/api/layout/presets/delete", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Missing name"}`, rec.Body.String())
	})

	t.Run("save list delete", func(t *testing.T) {
		storage := &StorageMock{}
		h := setupHandler(storage)

		for _, body := range []string{
			`{"name":"race","left":{"primary":"gear"}}`,
			`{"name":"quali","middle":{"primary":"rpm"}}`,
			`{"name":"race","right":{"primary":"fuel"}}`,
		} {
			rec := do(h.SavePresetHandle, http.MethodPost, "/api/layout/presets/save", body)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := do(h.PresetsHandle, http.MethodGet, "/api/layout/presets", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var listed struct {
			Presets []model.Layout `json:"presets"`
		}

		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		require.Len(t, listed.Presets, 2)
		assert.Equal(t, "quali", listed.Presets[0].Name)
		assert.Equal(t, "race", listed.Presets[1].Name)
		assert.Equal(t, model.KindFuel, listed.Presets[1].Right.Primary)
		assert.Equal(t, model.KindNone, listed.Presets[1].Left.Primary)

		rec = do(h.DeletePresetHandle, http.MethodPost, "/api/layout/presets/delete", `{"name":"race"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
		require.Len(t, storage.Saved, 1)
		assert.Equal(t, "quali", storage.Saved[0].Name)
	})

	t.Run("storage errors", func(t *testing.T) {
		h := setupHandler(&StorageMock{ReturnError: errors.New("locked")})

		rec := do(h.PresetsHandle, http.MethodGet, "/api/layout/presets", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		rec = do(h.SavePresetHandle, http.MethodPost, "/api/layout/presets/save", `{"name":"race"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("no storage", func(t *testing.T) {
		h := setupHandler(nil)

		rec := do(h.PresetsHandle, http.MethodGet, "/api/layout/presets", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NoError(t, h.ApplyLayout(layout.Default()))
	})
}

func TestTelemetryHandle(t *testing.T) {
	h := setupHandler(&StorageMock{})

	rec := do(h.TelemetryHandle, http.MethodPost, "/api/telemetry", `{"speed":99,"pit":1,"telemetryRunning":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap model.Snapshot

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.InDelta(t, 99.0, snap.Speed, 1e-9)
	assert.True(t, snap.Pit)
	assert.True(t, snap.TelemetryRunning)
	assert.Equal(t, "N", snap.Gear)
	assert.Equal(t, snap, h.Live.Snapshot())

	rec = do(h.TelemetryHandle, http.MethodPost, "/api/telemetry", `{"pit":"yes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, h.Live.Updates())

	rec = do(h.TelemetryHandle, http.MethodGet, "/api/telemetry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"speed":99`)
}

func TestPreviewHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		width  int
		height int
	}{
		{"default size", "/preview.png?mode=live", 820, 205},
		{"explicit width", "/preview.png?mode=demo&width=512&elapsed=0", 512, 128},
		{"high density", "/preview.png?mode=demo&width=400&density=2&elapsed=150", 800, 200},
		{"clamped", "/preview.png?width=100", 320, 80},
		{"density capped", "/preview.png?mode=demo&width=400&density=1e6", 1600, 400},
	}

	h := setupHandler(&StorageMock{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h.PreviewHandle, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

			img, err := png.Decode(rec.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}

	for _, target := range []string{
		"/preview.png?mode=sideways",
		"/preview.png?width=wide",
		"/preview.png?density=x",
		"/preview.png?density=NaN",
		"/preview.png?density=-Inf",
		"/preview.png?width=NaN",
		"/preview.png?elapsed=soon",
	} {
		t.Run("rejects "+target, func(t *testing.T) {
			rec := do(h.PreviewHandle, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestIndexHandle(t *testing.T) {
	storage := &StorageMock{Saved: []model.Layout{{Name: "race"}}}
	h := setupHandler(storage)
	h.Live.Update(model.Patch{Fuel: model.Ptr(12.34)})

	require.NoError(t, h.ApplyLayout(model.Layout{
		Name:   "Fuel",
		Left:   model.ZoneConfig{Primary: model.KindFuel},
		Middle: model.ZoneConfig{Primary: model.KindGear},
	}))

	rec := do(h.IndexHandle, http.MethodGet, "/?width=400&refresh=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=UTF-8", rec.Header().Get("Content-Type"))

	page := rec.Body.String()
	assert.Contains(t, page, "12.3 L")
	assert.Contains(t, page, `card" data-widget="gear"`)
	assert.NotContains(t, page, `card" data-widget="rpm"`)
	assert.Contains(t, page, "width=400")
	assert.NotContains(t, page, "http-equiv")
	assert.Contains(t, page, "<li>race</li>")

	rec = do(h.IndexHandle, http.MethodGet, "/?refresh=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
